// Package adapters holds the gorm repository for company profiles.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_synth/internal/feature/profile/domain/entity"
	"stock_synth/internal/feature/profile/usecase"
)

type CompanyModel struct {
	ID            uint    `gorm:"primaryKey"`
	Symbol        string  `gorm:"size:20;not null;uniqueIndex"`
	Name          string  `gorm:"size:255;not null"`
	Sector        string  `gorm:"size:100"`
	Industry      string  `gorm:"size:100"`
	MarketCap     string  `gorm:"size:32"`
	Price         float64 `gorm:"not null"`
	PE            float64 `gorm:"column:pe"`
	EPS           float64 `gorm:"column:eps"`
	Dividend      float64
	DividendYield float64
	Beta          float64
	Volume        string  `gorm:"size:32"`
	AvgVolume     string  `gorm:"size:32"`
	High52w       float64 `gorm:"column:high_52w;not null"`
	Low52w        float64 `gorm:"column:low_52w;not null"`
	Description   string  `gorm:"type:text"`
	CEO           string  `gorm:"column:ceo;size:100"`
	Employees     string  `gorm:"size:32"`
	Founded       string  `gorm:"size:16"`
	Headquarters  string  `gorm:"size:255"`
	Website       string  `gorm:"size:255"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

type companyGorm struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyGorm)(nil)

func NewCompanyRepository(db *gorm.DB) *companyGorm {
	return &companyGorm{db: db}
}

func (r *companyGorm) FindBySymbol(ctx context.Context, symbol string) (*entity.Company, error) {
	var m CompanyModel
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecase.ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	c := toEntity(m)
	return &c, nil
}

// UpsertBatch validates every company before writing any.
func (r *companyGorm) UpsertBatch(ctx context.Context, companies []entity.Company) error {
	if len(companies) == 0 {
		return nil
	}
	ms := make([]CompanyModel, 0, len(companies))
	for _, c := range companies {
		if err := c.Validate(); err != nil {
			return err
		}
		ms = append(ms, fromEntity(c))
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		UpdateAll: true,
	}).Create(&ms).Error
}

func toEntity(m CompanyModel) entity.Company {
	return entity.Company{
		Symbol: m.Symbol, Name: m.Name, Sector: m.Sector, Industry: m.Industry, MarketCap: m.MarketCap,
		Price: m.Price, PE: m.PE, EPS: m.EPS, Dividend: m.Dividend, DividendYield: m.DividendYield,
		Beta: m.Beta, Volume: m.Volume, AvgVolume: m.AvgVolume, High52w: m.High52w, Low52w: m.Low52w,
		Description: m.Description, CEO: m.CEO, Employees: m.Employees, Founded: m.Founded,
		Headquarters: m.Headquarters, Website: m.Website,
	}
}

func fromEntity(c entity.Company) CompanyModel {
	return CompanyModel{
		Symbol: c.Symbol, Name: c.Name, Sector: c.Sector, Industry: c.Industry, MarketCap: c.MarketCap,
		Price: c.Price, PE: c.PE, EPS: c.EPS, Dividend: c.Dividend, DividendYield: c.DividendYield,
		Beta: c.Beta, Volume: c.Volume, AvgVolume: c.AvgVolume, High52w: c.High52w, Low52w: c.Low52w,
		Description: c.Description, CEO: c.CEO, Employees: c.Employees, Founded: c.Founded,
		Headquarters: c.Headquarters, Website: c.Website,
	}
}
