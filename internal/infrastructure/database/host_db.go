package database

import (
	"fmt"
	"log"
	"payment_gateway/internal/config"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenHostDB connects to the e-commerce platform database that owns orders,
// customers, addresses and currencies. models are auto-migrated when requested.
func OpenHostDB(cfg config.HostDB, models ...any) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported host db driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		log.Printf("[database][host] failed to connect driver=%s err=%v", cfg.Driver, err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.AutoMigrate && len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			log.Printf("[database][host] auto-migrate failed err=%v", err)
			return nil, err
		}
	}

	log.Printf("[database][host] connected driver=%s", cfg.Driver)
	return db, nil
}
