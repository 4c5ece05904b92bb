package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/rizkypra/recipe-api/config"
	"github.com/rizkypra/recipe-api/pkg/helpers"
	"github.com/rizkypra/recipe-api/pkg/mailer"
	"github.com/rizkypra/recipe-api/pkg/mailer/templates"
)

// Consumes email jobs from RabbitMQ and sends them through Mailgun.
// Runs as a separate binary so the API never blocks on mail delivery.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatalf("connect rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatalf("open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		logger.Fatalf("declare queue: %v", err)
	}
	if err := ch.Qos(16, 0, false); err != nil {
		logger.Fatalf("set qos: %v", err)
	}

	deliveries, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Infof("email worker consuming from %q", cfg.RabbitMQEmailQueue)
	for {
		select {
		case <-quit:
			logger.Info("email worker shutting down")
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed, exiting")
				return
			}
			handle(mg, logger, d)
		}
	}
}

func handle(mg *mailer.Mailgun, logger *logrus.Logger, d amqp.Delivery) {
	var job mailer.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		logger.WithError(err).Warn("malformed email job, dropping")
		_ = d.Nack(false, false)
		return
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		s, t, h, err := templates.Render(job.Template, job.Data)
		if err != nil {
			logger.WithError(err).WithField("template", job.Template).Warn("render failed, dropping")
			_ = d.Nack(false, false)
			return
		}
		subject, text, html = s, t, h
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := mg.Send(ctx, job.To, subject, text, html); err != nil {
		logger.WithError(err).WithField("to", job.To).Error("send failed, requeueing")
		_ = d.Nack(false, true)
		return
	}
	logger.WithField("to", job.To).Info("email sent")
	_ = d.Ack(false)
}
