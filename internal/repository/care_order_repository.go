package repository

import (
	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/database"
	"github.com/petlink/petlink-api/internal/models"
)

// GormCareOrderRepository is a GORM implementation of CareOrderRepository
type GormCareOrderRepository struct {
	db *gorm.DB
}

// NewCareOrderRepository creates a new CareOrderRepository
func NewCareOrderRepository(db *gorm.DB) CareOrderRepository {
	return &GormCareOrderRepository{db: db}
}

// Create creates a new care order
func (r *GormCareOrderRepository) Create(order *models.CareOrder) error {
	return r.db.Create(order).Error
}

// FindByID finds a care order by ID with the owner preloaded
func (r *GormCareOrderRepository) FindByID(id uint64) (*models.CareOrder, error) {
	var order models.CareOrder
	if err := r.db.Preload("Owner").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// List retrieves care orders matching the filter. The visibility scope in the
// filter (owner or open-only) is set by the service and applied unconditionally;
// date bounds are inclusive on both ends.
func (r *GormCareOrderRepository) List(filter CareOrderFilter) ([]models.CareOrder, int64, error) {
	query := r.db.Model(&models.CareOrder{})

	if filter.OwnerID != nil {
		query = query.Where("care_orders.owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("care_orders.status = ?", *filter.Status)
	}
	if filter.StartDateFrom != nil {
		query = query.Where("care_orders.start_date >= ?", *filter.StartDateFrom)
	}
	if filter.StartDateTo != nil {
		query = query.Where("care_orders.start_date <= ?", *filter.StartDateTo)
	}
	if filter.EndDateFrom != nil {
		query = query.Where("care_orders.end_date >= ?", *filter.EndDateFrom)
	}
	if filter.EndDateTo != nil {
		query = query.Where("care_orders.end_date <= ?", *filter.EndDateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "care_orders.start_date ASC"
	if filter.SortDesc {
		order = "care_orders.start_date DESC"
	}

	var orders []models.CareOrder
	err := query.
		Order(order).
		Scopes(database.Paginate(filter.Pagination)).
		Preload("Owner").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// Update persists changes to a care order
func (r *GormCareOrderRepository) Update(order *models.CareOrder) error {
	return r.db.Save(order).Error
}

// Delete removes a care order
func (r *GormCareOrderRepository) Delete(id uint64) error {
	return r.db.Delete(&models.CareOrder{}, id).Error
}
