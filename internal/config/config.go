package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config 统一环境变量配置（之前散落在 main/router 里写死，现在集中到这里）
type Config struct {
	Addr string `envconfig:"ADDR" default:":8080"`

	MySQLDSN string `envconfig:"MYSQL_DSN" default:"user:password@tcp(127.0.0.1:3306)/iedc_club?charset=utf8mb4&parseTime=True"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	SMTPHost     string `envconfig:"SMTP_HOST" default:"smtp.example.com"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME" default:"no-reply@example.com"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD" default:""`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"IEDC Club <no-reply@example.com>"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:"127.0.0.1:9092"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"moderation-events"`

	AccessSecret  string `envconfig:"JWT_ACCESS_SECRET" default:"secret-key"`
	RefreshSecret string `envconfig:"JWT_REFRESH_SECRET" default:"refresh-key"`

	// 执委会招募的准入学期白名单，逗号分隔
	EligibleSemesters []string `envconfig:"ELIGIBLE_SEMESTERS" default:"1st Semester,3rd Semester"`
	// 招募开关，关闭后服务端直接拒绝提交
	ExecomCallOpen bool `envconfig:"EXECOM_CALL_OPEN" default:"true"`

	// 初始 IIC 管理员账号（不存在时启动阶段写入）
	BootstrapAdminUsername string `envconfig:"BOOTSTRAP_ADMIN_USERNAME" default:"iicadmin"`
	BootstrapAdminPassword string `envconfig:"BOOTSTRAP_ADMIN_PASSWORD" default:""`
	BootstrapAdminEmail    string `envconfig:"BOOTSTRAP_ADMIN_EMAIL" default:"iic@example.com"`
}

// Load 从环境变量读取配置，缺省值见结构体 tag
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("IEDC", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
