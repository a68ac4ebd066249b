package database

import (
	"log"
	"time"

	"crm_backend/internals/configs"
	errorLogModel "crm_backend/internals/features/crm/error_logs/model"
	leadModel "crm_backend/internals/features/crm/leads/model"
	salesModel "crm_backend/internals/features/crm/sales/model"
	userModel "crm_backend/internals/features/users/user/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// Catatan: kalau pakai PgBouncer, biarkan PreferSimpleProtocol=true
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  configs.BuildPostgresDSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// AutoMigrate hanya jalan kalau DB_AUTO_MIGRATE=true (default: skema dikelola migrasi SQL).
func AutoMigrate(db *gorm.DB) error {
	if !configs.GetEnvBool("DB_AUTO_MIGRATE", false) {
		return nil
	}
	log.Println("[INFO] AutoMigrate CRM tables...")
	return MigrateModels(db)
}

// MigrateModels membuat/menyesuaikan semua tabel yang dipakai service ini.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&salesModel.SalesModel{},
		&leadModel.LeadModel{},
		&errorLogModel.ErrorLogModel{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
