package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesOnce   sync.Once
	sesClient *ses.Client
	sesErr    error
)

func mailer() (*ses.Client, error) {
	sesOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			sesErr = fmt.Errorf("AWS config load failed: %w", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient, sesErr
}

// generic SES sender
func sendEmail(to string, subject string, htmlBody string) error {
	client, err := mailer()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendPatientCredentials mails a freshly created patient their temporary
// login, mirroring the welcome mail the clinic portal sends.
func SendPatientCredentials(to, name, tempPassword string) error {
	subject := "Your AyuBalance Account Credentials"
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
		  <h2>Welcome to AyuBalance, %s!</h2>
		  <p>Your dietitian has created an account for you.</p>
		  <p><strong>Email:</strong> %s</p>
		  <p><strong>Temporary Password:</strong> %s</p>
		  <p>Please log in and change your password.</p>
		</div>`, name, to, tempPassword)
	return sendEmail(to, subject, body)
}
