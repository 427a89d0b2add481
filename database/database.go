package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var REDIS *redis.Client

// InitDB initializes the database connection, migrates the models and
// populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=Europe/Moscow",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.Event{},
		&models.Question{},
		&models.Registration{},
		&models.TestResult{},
		&models.SiteText{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// InitRedis initializes the Redis client used for event list caching. Caching
// is optional: with no REDIS_ADDR configured the client stays nil and every
// read goes to the database.
func InitRedis() {
	if config.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, event caching disabled")
		return
	}
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
}

// Default site texts seeded on first boot
var defaultSiteTexts = map[string]string{
	models.SiteTextPaymentText: "За участие в мероприятиях плата не взимается, а стоимость документов с индивидуальным номером 100 руб. Реквизиты для оплаты высылаются после прохождения испытаний.",
	models.SiteTextFooterEmail: "naych_kooper@mail.ru",
	models.SiteTextFooterText:  "© 2025 Все права защищены. Копирование контента без разрешения автора строго ЗАПРЕЩЕНО!",
	models.SiteTextAboutText:   "Центр науки и инноваций проводит международные олимпиады, конкурсы и конференции.",
}

// Populate populates the database with default values if needed
func Populate() {
	var countTexts int64
	DB.Model(&models.SiteText{}).Count(&countTexts)
	if countTexts == 0 {
		for key, value := range defaultSiteTexts {
			DB.Create(&models.SiteText{Key: key, Value: value})
		}
		log.Println("Default site texts created")
	}

	var countEvents int64
	DB.Model(&models.Event{}).Count(&countEvents)
	if countEvents == 0 {
		event := models.Event{
			Category:         models.CategoryOlympiad,
			Title:            "Международная Олимпиада по статистике и прикладной математике",
			ShortDescription: "Современные подходы к анализу данных и статистическим методам.",
			Description:      "Приглашаем вас принять участие в Международной Олимпиаде по Статистике — «Статистика будущего: искусство анализа данных!»",
			Questions: []*models.Question{
				{
					Position:   1,
					Prompt:     "По формуле (∑p1q1)/(∑p0q1) рассчитывают общий индекс цен",
					OptionA:    "Эджворта-Маршалла",
					OptionB:    "Фишера",
					OptionC:    "Ласпейреса",
					OptionD:    "Пааше",
					CorrectKey: "d",
				},
				{
					Position:   2,
					Prompt:     "Выборка называется малой, если ее объем менее…",
					OptionA:    "30",
					OptionB:    "40",
					OptionC:    "50",
					OptionD:    "100",
					CorrectKey: "a",
				},
			},
		}
		if err := DB.Create(&event).Error; err != nil {
			log.Println("Failed to seed sample event: ", err)
		} else {
			log.Println("Sample olympiad created")
		}
	}
}
