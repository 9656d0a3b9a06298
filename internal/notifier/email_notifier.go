package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	config "github.com/Davi-Bueno/api-vendas/configs"
)

// SendEmail notifies a customer that their cart changed, with its current
// total.
func SendEmail(recipientEmail string, clienteNome string, carrinhoID uint, total float64) error {
	cfg := config.LoadEmailConfig()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg)

	if cfg.SenderEmail == "" {
		return fmt.Errorf("sender email address is not configured in environment variables")
	}
	if recipientEmail == "" {
		return fmt.Errorf("recipient email address is empty")
	}

	subject := fmt.Sprintf("Carrinho #%d atualizado", carrinhoID)

	totalStr := strconv.FormatFloat(total, 'f', 2, 64)

	bodyHTML := fmt.Sprintf(`
        <html>
        <body>
            <p>Olá %s,</p>
            <p>Um novo item foi adicionado ao seu carrinho #%d.</p>
            <p><strong>Total atual:</strong> R$ %s</p>
            <p>Atenciosamente,</p>
            <p>Equipe de Vendas de Eletrodomésticos</p>
        </body>
        </html>`, clienteNome, carrinhoID, totalStr)

	bodyText := fmt.Sprintf(
		"Olá %s,\n\nUm novo item foi adicionado ao seu carrinho #%d.\n\n"+
			"Total atual: R$ %s\n\nAtenciosamente,\nEquipe de Vendas de Eletrodomésticos",
		clienteNome, carrinhoID, totalStr)

	input := &ses.SendEmailInput{
		Source: aws.String(cfg.SenderEmail),
		Destination: &types.Destination{
			ToAddresses: []string{recipientEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyHTML),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}

	if _, err = client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("e-mail de carrinho enviado", "carrinho_id", carrinhoID, "to", recipientEmail)
	return nil
}
