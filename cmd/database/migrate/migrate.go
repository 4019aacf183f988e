package migration

import (
	"Grab-N-Go-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.Canteen{},
		&entities.CanteenRequest{},
		&entities.Tiffin{},
		&entities.TiffinRequest{},
		&entities.TiffinSubscriber{},
		&entities.TiffinDailyStatus{},
		&entities.Menu{},
		&entities.MenuItem{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.Payment{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
