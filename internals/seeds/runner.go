package seeds

import (
	"log"

	"crm_backend/internals/configs"
	users "crm_backend/internals/seeds/users/auth"

	"gorm.io/gorm"
)

// RunAllSeeds dijalankan saat boot kalau SEED_ON_START=true.
func RunAllSeeds(db *gorm.DB) {
	//* User
	path := configs.GetEnv("SEED_USERS_FILE", "internals/seeds/users/auth/data_users.json")
	n, err := users.SeedUsersFromJSON(db, path)
	if err != nil {
		log.Printf("❌ Seed users gagal: %v", err)
		return
	}
	log.Printf("✅ Seed users selesai: %d user baru", n)
}
