package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"mockgraph/internal/domain"
)

type Config struct {
	Kind            domain.Kind
	HTTPAddr        string
	FixturePath     string
	MySQLDSN        string
	MySQLTable      string
	GraphiQL        bool
	GraphQLMaxDepth int
	SSEHeartbeat    time.Duration

	RabbitMQURL         string
	RabbitExchange      string
	RabbitQueue         string
	RabbitRoutingKey    string
	RabbitConsumerTag   string
	RabbitPublishPrefix string

	OTELServiceName string
	OTLPEndpoint    string
	OTLPInsecure    bool

	LogFile string
}

// Flags holds command line overrides. Zero values leave the environment
// derived setting untouched.
type Flags struct {
	Addr        string
	FixturePath string
	GraphiQL    *bool
}

func New(kind domain.Kind, flags Flags) *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Kind:                kind,
		HTTPAddr:            ":" + kind.DefaultPort(),
		MySQLTable:          string(kind),
		GraphiQL:            true,
		GraphQLMaxDepth:     10,
		SSEHeartbeat:        15 * time.Second,
		RabbitExchange:      "mockgraph",
		RabbitQueue:         "mockgraph." + kind.Singular() + ".create",
		RabbitRoutingKey:    "commands." + kind.Singular() + ".create",
		RabbitConsumerTag:   "mockgraph-" + string(kind),
		RabbitPublishPrefix: "events",
		OTELServiceName:     "mockgraph-" + string(kind),
		OTLPInsecure:        true,
		LogFile:             "logs/" + string(kind) + ".log",
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPAddr = ":" + port
	}

	cfg.FixturePath = os.Getenv("FIXTURE_PATH")
	cfg.MySQLDSN = os.Getenv("MYSQL_DSN")
	cfg.RabbitMQURL = os.Getenv("RABBITMQ_URL")

	if v := os.Getenv("MYSQL_TABLE"); v != "" {
		cfg.MySQLTable = v
	}
	if v := os.Getenv("GRAPHIQL_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.GraphiQL = b
		}
	}
	if v := os.Getenv("GRAPHQL_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.GraphQLMaxDepth = n
		}
	}

	if v := os.Getenv("RABBITMQ_EXCHANGE"); v != "" {
		cfg.RabbitExchange = v
	}
	if v := os.Getenv("RABBITMQ_QUEUE"); v != "" {
		cfg.RabbitQueue = v
	}
	if v := os.Getenv("RABBITMQ_ROUTING_KEY"); v != "" {
		cfg.RabbitRoutingKey = v
	}
	if v := os.Getenv("RABBITMQ_CONSUMER_TAG"); v != "" {
		cfg.RabbitConsumerTag = v
	}
	if v := os.Getenv("RABBITMQ_PUBLISH_PREFIX"); v != "" {
		cfg.RabbitPublishPrefix = v
	}

	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.OTELServiceName = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.OTLPInsecure = b
		}
	}

	if v := os.Getenv("SSE_HEARTBEAT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSEHeartbeat = time.Duration(n) * time.Second
		}
	}

	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	cfg.apply(flags)
	return cfg
}

func (c *Config) apply(flags Flags) {
	if flags.Addr != "" {
		c.HTTPAddr = flags.Addr
	}
	if flags.FixturePath != "" {
		c.FixturePath = flags.FixturePath
	}
	if flags.GraphiQL != nil {
		c.GraphiQL = *flags.GraphiQL
	}
}
