package main

import (
	"log"
	"os"

	"contract-editor-be/internal/model"
	"contract-editor-be/pkg/database"
	"contract-editor-be/pkg/docvars"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// systemInjectables is the built-in catalog available to every user. Internal
// entries are computed at preview time and never prompt for input.
func systemInjectables() []model.Injectable {
	return []model.Injectable{
		{Key: docvars.KeyDateNow, Label: "Current Date", DataType: "DATE", SourceType: docvars.SourceTypeInternal, Metadata: datatypes.JSONMap{"default_format": "DD/MM/YYYY"}},
		{Key: docvars.KeyDateTimeNow, Label: "Current Date & Time", DataType: "DATE", SourceType: docvars.SourceTypeInternal, Metadata: datatypes.JSONMap{"default_format": "DD/MM/YYYY HH:mm"}},
		{Key: docvars.KeyTimeNow, Label: "Current Time", DataType: "TEXT", SourceType: docvars.SourceTypeInternal},
		{Key: docvars.KeyYearNow, Label: "Current Year", DataType: "NUMBER", SourceType: docvars.SourceTypeInternal},
		{Key: docvars.KeyMonthNow, Label: "Current Month", DataType: "NUMBER", SourceType: docvars.SourceTypeInternal},
		{Key: docvars.KeyDayNow, Label: "Current Day", DataType: "NUMBER", SourceType: docvars.SourceTypeInternal},

		{Key: "client_name", Label: "Client Name", DataType: "TEXT", SourceType: docvars.SourceTypeExternal},
		{Key: "client_email", Label: "Client Email", DataType: "TEXT", SourceType: docvars.SourceTypeExternal},
		{Key: "contract_value", Label: "Contract Value", DataType: "CURRENCY", SourceType: docvars.SourceTypeExternal, Metadata: datatypes.JSONMap{"currency": "USD"}},
		{Key: "effective_date", Label: "Effective Date", DataType: "DATE", SourceType: docvars.SourceTypeExternal, Metadata: datatypes.JSONMap{"default_format": "DD/MM/YYYY"}},
	}
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding System Injectable Catalog...")

	created, skipped := 0, 0
	for _, inj := range systemInjectables() {
		// System entries have no owner; key uniqueness is per scope.
		var existing model.Injectable
		if err := db.Where("user_id IS NULL AND key = ?", inj.Key).First(&existing).Error; err == nil {
			color.Yellow("skip   %s (already exists)", inj.Key)
			skipped++
			continue
		}

		if err := db.Create(&inj).Error; err != nil {
			color.Red("error  %s: %v", inj.Key, err)
			continue
		}
		color.Green("create %s (%s/%s)", inj.Key, inj.DataType, inj.SourceType)
		created++
	}

	log.Printf("Injectable seeding completed: %d created, %d skipped", created, skipped)
}
