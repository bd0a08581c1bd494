package messaging

import (
	"fmt"
	"log"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"healthsync-service/internal/app/config"
)

// NewRabbitMQ opens the broker connection used for outbound mail. The mailer
// service declares its own queue on the channel it opens, so only the
// connection is established here.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	brokerURL := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName("healthsync-service")

	connection, err := amqp091.DialConfig(brokerURL, amqp091.Config{
		Heartbeat:  10 * time.Second,
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to the mail broker: %s", err.Error())
	}

	log.Println("Connected to rabbitmq")
	return connection
}
