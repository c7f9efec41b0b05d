package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"

	UploadDriverMinio = "minio"
	UploadDriverS3    = "s3"

	defaultJWTExpire  = 7 * 24 * time.Hour
	defaultORSBaseURL = "https://api.openrouteservice.org"
	defaultSMTPPort   = 587
)

type (
	Tasks struct {
		StatsRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port                   string
		ClientURL              string         // origin SPA для CORS
		RequestTimeout         time.Duration  // middleware timeout
		RateLimiterQPS         int            // middleware rate limiter capacity
		RateLimiterBurst       int            // middleware rate limiter burst/refill
		AuthRateLimitPerMinute int            // лимит попыток входа/регистрации с одного IP
		TrustedProxies         []netip.Prefix // только от них принимается X-Forwarded-For
		PprofEnabled           bool
		PprofPort              string
	}

	Database struct {
		Host        string
		Port        string
		User        string
		Password    string
		DBName      string
		SSLMode     string
		AutoMigrate bool
	}

	Mongo struct {
		URL          string
		DBName       string
		Transactions bool // нужен replica set
	}

	Redis struct {
		URL string
	}

	Auth struct {
		JWTSecret string
		JWTExpire time.Duration
	}

	Estimator struct {
		ORSAPIKey    string
		ORSBaseURL   string
		MLServiceURL string
	}

	Minio struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		UseSSL    bool
		PublicURL string
	}

	S3 struct {
		Region          string
		Bucket          string
		Endpoint        string
		AccessKeyID     string
		SecretAccessKey string
		PublicURL       string
		UsePathStyle    bool
	}

	Upload struct {
		Driver string
		Minio  Minio
		S3     S3
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	SMTP struct {
		Host     string
		Port     int
		User     string
		Password string
		From     string
	}

	Config struct {
		LogLevel      string
		StorageDriver string
		Tasks         Tasks
		Server        HTTPServer
		Database      Database
		Mongo         Mongo
		Redis         Redis
		Auth          Auth
		Estimator     Estimator
		Upload        Upload
		Kafka         Kafka
		SMTP          SMTP
	}
)

// Load читает окружение и проверяет то, без чего не стартует ни один бинарь.
// Настройки HTTP сервера и консьюмера проверяются отдельно в точках входа.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	statsInterval, err := osGetEnvDuration("BACKGROUND_STATS_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	authRateLimit, err := osGetInt("AUTH_RATE_LIMIT_PER_MINUTE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	trustedProxies, err := osGetPrefixes("TRUSTED_PROXIES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoMigrate, err := osGetBool("POSTGRES_AUTO_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mongoTransactions, err := osGetBool("MONGO_TRANSACTIONS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	jwtExpire, err := osGetExpire("JWT_EXPIRE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if jwtExpire == 0 {
		jwtExpire = defaultJWTExpire
	}

	minioUseSSL, err := osGetBool("MINIO_USE_SSL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	s3PathStyle, err := osGetBool("S3_USE_PATH_STYLE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	smtpPort, err := osGetInt("SMTP_PORT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if smtpPort == 0 {
		smtpPort = defaultSMTPPort
	}

	storageDriver := os.Getenv("DATABASE_DRIVER")
	if storageDriver == "" {
		storageDriver = DriverPostgres
	}

	orsBaseURL := os.Getenv("ORS_BASE_URL")
	if orsBaseURL == "" {
		orsBaseURL = defaultORSBaseURL
	}

	return &Config{
		LogLevel:      os.Getenv("LOG_LEVEL"),
		StorageDriver: storageDriver,
		Tasks: Tasks{
			StatsRefreshInterval: statsInterval,
		},
		Server: HTTPServer{
			Port:                   os.Getenv("PORT"),
			ClientURL:              os.Getenv("CLIENT_URL"),
			RequestTimeout:         requestTimeout,
			RateLimiterQPS:         rateLimiterQPS,
			RateLimiterBurst:       rateLimiterBurst,
			AuthRateLimitPerMinute: authRateLimit,
			TrustedProxies:         trustedProxies,
			PprofEnabled:           pprofEnabled,
			PprofPort:              os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:        os.Getenv("POSTGRES_HOST"),
			Port:        os.Getenv("POSTGRES_PORT"),
			User:        os.Getenv("POSTGRES_USER"),
			Password:    os.Getenv("POSTGRES_PASSWORD"),
			DBName:      os.Getenv("POSTGRES_DB"),
			SSLMode:     os.Getenv("POSTGRES_SSLMODE"),
			AutoMigrate: autoMigrate,
		},
		Mongo: Mongo{
			URL:          os.Getenv("MONGO_URL"),
			DBName:       os.Getenv("MONGO_DB"),
			Transactions: mongoTransactions,
		},
		Redis: Redis{
			URL: os.Getenv("REDIS_URL"),
		},
		Auth: Auth{
			JWTSecret: os.Getenv("JWT_SECRET"),
			JWTExpire: jwtExpire,
		},
		Estimator: Estimator{
			ORSAPIKey:    os.Getenv("ORS_API_KEY"),
			ORSBaseURL:   orsBaseURL,
			MLServiceURL: os.Getenv("ML_SERVICE_URL"),
		},
		Upload: Upload{
			Driver: os.Getenv("UPLOAD_DRIVER"),
			Minio: Minio{
				Endpoint:  os.Getenv("MINIO_ENDPOINT"),
				AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
				SecretKey: os.Getenv("MINIO_SECRET_KEY"),
				Bucket:    os.Getenv("MINIO_BUCKET"),
				UseSSL:    minioUseSSL,
				PublicURL: os.Getenv("MINIO_PUBLIC_URL"),
			},
			S3: S3{
				Region:          os.Getenv("S3_REGION"),
				Bucket:          os.Getenv("S3_BUCKET"),
				Endpoint:        os.Getenv("S3_ENDPOINT"),
				AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
				PublicURL:       os.Getenv("S3_PUBLIC_URL"),
				UsePathStyle:    s3PathStyle,
			},
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.StorageDriver {
	case DriverPostgres:
		if err := validateDatabase(&cfg.Database); err != nil {
			return err
		}
	case DriverMongo:
		if cfg.Mongo.URL == "" {
			return errors.New("MONGO_URL is required")
		}
		if cfg.Mongo.DBName == "" {
			return errors.New("MONGO_DB is required")
		}
	default:
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMongo, cfg.StorageDriver)
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	switch cfg.Upload.Driver {
	case "":
	case UploadDriverMinio:
		if cfg.Upload.Minio.Endpoint == "" || cfg.Upload.Minio.Bucket == "" {
			return errors.New("MINIO_ENDPOINT and MINIO_BUCKET are required for UPLOAD_DRIVER=minio")
		}
	case UploadDriverS3:
		if cfg.Upload.S3.Region == "" || cfg.Upload.S3.Bucket == "" {
			return errors.New("S3_REGION and S3_BUCKET are required for UPLOAD_DRIVER=s3")
		}
	default:
		return fmt.Errorf("UPLOAD_DRIVER must be %q or %q, got %q", UploadDriverMinio, UploadDriverS3, cfg.Upload.Driver)
	}

	if cfg.Kafka.Brokers != "" {
		if cfg.Kafka.Topic == "" {
			return errors.New("KAFKA_TOPIC is required")
		}
		if cfg.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required")
		}
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

// ValidateServer настройки HTTP сервиса.
func (c *Config) ValidateServer() error {
	if c.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if c.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if c.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if c.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if c.Server.AuthRateLimitPerMinute == 0 {
		return errors.New("AUTH_RATE_LIMIT_PER_MINUTE is required")
	}
	if c.Server.PprofPort == "" && c.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if c.Tasks.StatsRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STATS_REFRESH_INTERVAL is required")
	}
	return nil
}

// ValidateConsumer настройки воркера, читающего события заказов.
func (c *Config) ValidateConsumer() error {
	if c.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if c.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if c.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if c.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	return nil
}

// BrokerList список брокеров из строки через запятую.
func (k Kafka) BrokerList() []string {
	brokers := make([]string, 0, 3)
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetExpire принимает как Go duration, так и число дней вида "7d".
func osGetExpire(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	if days, ok := strings.CutSuffix(val, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return time.Duration(0), fmt.Errorf("invalid days format for %s=%q", s, val)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	return osGetEnvDuration(s)
}

// osGetPrefixes список адресов или подсетей через запятую: "10.0.0.1, 172.16.0.0/12".
func osGetPrefixes(s string) ([]netip.Prefix, error) {
	val := os.Getenv(s)
	if val == "" {
		return nil, nil
	}

	var res []netip.Prefix
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "/") {
			prefix, err := netip.ParsePrefix(part)
			if err != nil {
				return nil, fmt.Errorf("invalid prefix format for %s=%q: %w", s, part, err)
			}
			res = append(res, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(part)
		if err != nil {
			return nil, fmt.Errorf("invalid address format for %s=%q: %w", s, part, err)
		}
		addr = addr.Unmap()
		res = append(res, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
