package infra

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pyama86/inquiry-relay/domain/model"
)

type DataBase struct {
	db *gorm.DB
}

func NewDataBase(dbpath string) (*DataBase, error) {
	if !path.IsAbs(dbpath) {
		dbpath = path.Join(os.Getenv("PWD"), dbpath)
	}
	if err := os.MkdirAll(path.Dir(dbpath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}
	db, err := gorm.Open("sqlite3", dbpath)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Inquiry{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate inquiries: %w", err)
	}
	return &DataBase{db: db}, nil
}

func (d *DataBase) SaveInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	return d.db.Save(inquiry).Error
}

func (d *DataBase) GetInquiry(ctx context.Context, id string) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	err := d.db.Where("id = ?", id).First(&inquiry).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (d *DataBase) Close() error {
	return d.db.Close()
}
