package config

import "os"

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	BucketName string

	GmailUser        string
	GmailPass        string
	ContactRecipient string

	CaptchaSecret string
	GeminiKey     string
}

func LoadConfig() Config {
	return Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		BucketName: os.Getenv("BUCKET_NAME"),

		GmailUser:        os.Getenv("GMAIL_USER"),
		GmailPass:        os.Getenv("GMAIL_APP_PASSWORD"),
		ContactRecipient: os.Getenv("CONTACT_RECIPIENT"),

		CaptchaSecret: os.Getenv("CAPTCHA_SECRET"),
		GeminiKey:     os.Getenv("GEMINI_KEY"),
	}
}
