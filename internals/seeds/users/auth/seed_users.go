package user

import (
	"log"
	"os"
	"strings"

	authHelper "crm_backend/internals/features/users/auth/helper"
	"crm_backend/internals/features/users/user/model"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON: user yang email-nya sudah ada dilewati. Return jumlah user baru.
func SeedUsersFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, err
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, err
	}
	return SeedUsers(db, inputs), nil
}

func SeedUsers(db *gorm.DB, inputs []UserSeed) int {
	created := 0
	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.Email))

		var n int64
		if err := db.Model(&model.UserModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
			log.Printf("❌ Gagal cek user '%s': %v", email, err)
			continue
		}
		if n > 0 {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", email, err)
			continue
		}

		newUser := model.UserModel{
			UserName: strings.TrimSpace(data.UserName),
			FullName: strings.TrimSpace(data.FullName),
			Email:    email,
			Password: hashedPassword,
			Role:     strings.ToLower(strings.TrimSpace(data.Role)),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", email, err)
			continue
		}
		created++
		log.Printf("✅ Berhasil insert user '%s'", email)
	}
	return created
}
