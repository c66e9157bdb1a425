package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/zee467/twitter-clone/app/models"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

func Connect(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
	// TranslateError maps driver duplicate-key errors to gorm.ErrDuplicatedKey.
	return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&models.User{})
}
