package config

import "time"

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Comments CommentsConfig `mapstructure:"comments"`
	Contact  ContactConfig  `mapstructure:"contact"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig MongoDB配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	MainBucket string `mapstructure:"main_bucket"`
	UseSSL     bool   `mapstructure:"use_ssl"`
}

// JWTConfig 后台会话令牌配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// LogstashConfig 远程日志配置，Address 为空时只写 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// CommentsConfig 评论子系统配置
// AutoApprove 取代原来按运行环境判断的"开发模式自动过审"行为，
// 必须显式开启，默认关闭。
type CommentsConfig struct {
	AutoApprove      bool `mapstructure:"auto_approve"`
	CreateWindowMs   int  `mapstructure:"create_window_ms"`
	CreateLimit      int  `mapstructure:"create_limit"`
	LikeWindowMs     int  `mapstructure:"like_window_ms"`
	LikeLimit        int  `mapstructure:"like_limit"`
	EmailHourlyLimit int  `mapstructure:"email_hourly_limit"`
}

// ContactConfig 联系表单配置
type ContactConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	WindowMs   int    `mapstructure:"window_ms"`
	Limit      int    `mapstructure:"limit"`
}

func (s *Config) applyDefaults() {
	if s.Server.Port == 0 {
		s.Server.Port = 8080
	}
	if s.JWT.ExpireHours == 0 {
		s.JWT.ExpireHours = 2
	}
	if s.Comments.CreateWindowMs == 0 {
		s.Comments.CreateWindowMs = 60_000
	}
	if s.Comments.CreateLimit == 0 {
		s.Comments.CreateLimit = 5
	}
	if s.Comments.LikeWindowMs == 0 {
		s.Comments.LikeWindowMs = 60_000
	}
	if s.Comments.LikeLimit == 0 {
		s.Comments.LikeLimit = 30
	}
	if s.Comments.EmailHourlyLimit == 0 {
		s.Comments.EmailHourlyLimit = 3
	}
	if s.Contact.WindowMs == 0 {
		s.Contact.WindowMs = 60_000
	}
	if s.Contact.Limit == 0 {
		s.Contact.Limit = 3
	}
}

// CommentCreateWindow 评论创建限流窗口
func (s *CommentsConfig) CommentCreateWindow() time.Duration {
	return time.Duration(s.CreateWindowMs) * time.Millisecond
}

// CommentLikeWindow 点赞限流窗口
func (s *CommentsConfig) CommentLikeWindow() time.Duration {
	return time.Duration(s.LikeWindowMs) * time.Millisecond
}

// Window 联系表单限流窗口
func (s *ContactConfig) Window() time.Duration {
	return time.Duration(s.WindowMs) * time.Millisecond
}
