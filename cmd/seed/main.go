package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"salondesk/internal/database"
	"salondesk/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "salondesk.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM commissions")
	db.Exec("DELETE FROM invoice_items")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM appointment_services")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM staff_services")
	db.Exec("DELETE FROM staff")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM admin_users")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.AdminUser{
		Email:        "admin@salondesk.local",
		PasswordHash: string(hash),
		Name:         "Salon Administrator",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@salondesk.local / admin123")

	// ================== SERVICES ==================
	log.Println("Creating services...")
	services := []domain.Service{
		{Name: "Haircut", Description: "Cut and style", Price: decimal.NewFromInt(35), TimeEstimate: 45},
		{Name: "Hair Coloring", Description: "Full color treatment", Price: decimal.NewFromInt(120), TimeEstimate: 120},
		{Name: "Manicure", Description: "Classic manicure", Price: decimal.NewFromInt(25), TimeEstimate: 30},
		{Name: "Pedicure", Description: "Classic pedicure", Price: decimal.NewFromInt(40), TimeEstimate: 45},
		{Name: "Facial", Description: "Deep cleansing facial", Price: decimal.NewFromInt(80), TimeEstimate: 60},
		{Name: "Massage", Description: "Full body relaxation massage", Price: decimal.NewFromInt(90), TimeEstimate: 60},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== STAFF ==================
	log.Println("Creating staff...")
	staff := []domain.Staff{
		{
			FirstName:      "Maria",
			LastName:       "Lopez",
			Email:          "maria@salondesk.local",
			Phone:          "+1 555 010 2001",
			CommissionRate: decimal.NewFromInt(20),
		},
		{
			FirstName:      "James",
			LastName:       "Chen",
			Email:          "james@salondesk.local",
			Phone:          "+1 555 010 2002",
			CommissionRate: decimal.NewFromInt(15),
		},
		{
			FirstName:      "Aisha",
			LastName:       "Khan",
			Email:          "aisha@salondesk.local",
			Phone:          "+1 555 010 2003",
			CommissionRate: decimal.NewFromFloat(17.5),
		},
	}
	for i := range staff {
		db.Create(&staff[i])
	}

	// Specializations: Maria does hair, James does nails, Aisha does spa.
	db.Model(&staff[0]).Association("Specializations").Replace([]domain.Service{services[0], services[1]})
	db.Model(&staff[1]).Association("Specializations").Replace([]domain.Service{services[2], services[3]})
	db.Model(&staff[2]).Association("Specializations").Replace([]domain.Service{services[4], services[5]})

	// ================== APPOINTMENTS ==================
	log.Println("Creating appointments...")
	tomorrow := time.Now().AddDate(0, 0, 1)
	appointments := []domain.Appointment{
		{
			CustomerName:  "Emma Wilson",
			CustomerEmail: "emma@example.com",
			CustomerPhone: "+1 555 020 3001",
			Date:          tomorrow,
			Time:          "10:00",
			Status:        domain.AppointmentApproved,
			Services: []domain.AppointmentService{
				{ServiceID: services[0].ID, StaffID: &staff[0].ID},
			},
		},
		{
			CustomerName:  "Liam Brown",
			CustomerEmail: "liam@example.com",
			CustomerPhone: "+1 555 020 3002",
			Date:          tomorrow,
			Time:          "14:30",
			Status:        domain.AppointmentPending,
			Services: []domain.AppointmentService{
				{ServiceID: services[4].ID},
			},
		},
	}
	for i := range appointments {
		db.Create(&appointments[i])
	}

	log.Println("Seed complete")
}
