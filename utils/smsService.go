package utils

import (
	"fmt"
	"lms/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// SendSMS posts a text message to the external SMS gateway. Best-effort:
// failures are logged, never surfaced to the caller's request.
func SendSMS(phone, message string) error {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", config.AppConfig.SmsApiKey).
		SetBody(map[string]string{
			"to":      phone,
			"message": message,
		}).
		Post(config.AppConfig.SmsApiURL)
	if err != nil {
		log.Printf("Error sending SMS to %s: %v", phone, err)
		return err
	}
	if resp.IsError() {
		log.Printf("SMS gateway returned %d for %s: %s", resp.StatusCode(), phone, resp.String())
		return fmt.Errorf("sms gateway status %d", resp.StatusCode())
	}
	return nil
}

// SendEnrolledSMS confirms enrollment over SMS.
func SendEnrolledSMS(phone, name, courseName string) {
	msg := fmt.Sprintf("Hi %s, your enrollment in %s is confirmed. Welcome aboard! - Course Academy", name, courseName)
	go SendSMS(phone, msg)
}
