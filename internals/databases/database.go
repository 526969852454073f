package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"santhome_backend/internals/configs"
	attendanceModel "santhome_backend/internals/features/hostel/attendance/model"
	apologyModel "santhome_backend/internals/features/hostel/apology/model"
	complaintModel "santhome_backend/internals/features/hostel/complaint/model"
	holidayModel "santhome_backend/internals/features/hostel/holiday/model"
	feeModel "santhome_backend/internals/features/finance/feedue/model"
	mealtimeModel "santhome_backend/internals/features/mess/mealtime/model"
	messcutModel "santhome_backend/internals/features/mess/messcut/model"
	eligibilityModel "santhome_backend/internals/features/outing/eligibility/model"
	outingModel "santhome_backend/internals/features/outing/request/model"
	authModel "santhome_backend/internals/features/users/auth/model"
	parentModel "santhome_backend/internals/features/users/parent/model"
	studentModel "santhome_backend/internals/features/users/student/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=santhome&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // required for PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUpQueries pings the pool shortly after boot so the first real request
// does not pay the connection cost.
func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func AutoMigrate() {
	err := DB.AutoMigrate(
		&studentModel.StudentModel{},
		&parentModel.ParentModel{},
		&authModel.OTPModel{},
		&authModel.TokenBlacklist{},
		&messcutModel.MesscutModel{},
		&mealtimeModel.MealTimeModel{},
		&complaintModel.ComplaintModel{},
		&apologyModel.ApologyModel{},
		&holidayModel.HolidayModel{},
		&attendanceModel.AttendanceModel{},
		&outingModel.OutingRequestModel{},
		&eligibilityModel.OutingEligibilityModel{},
		&feeModel.FeeDueModel{},
		&feeModel.FeePaymentModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] auto-migrate failed: %v", err)
	}
	log.Println("[INFO] migrations applied.")
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
