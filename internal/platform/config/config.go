// Package config は環境変数からのアプリケーション設定の読み込みを提供します。
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// Port はHTTPサーバーの待ち受けポートです。
	Port string `env:"PORT" envDefault:"8080"`

	// FrontendURL は外部公開されているフロントエンドのオリジンです。
	// CORSの許可オリジンと決済後のリダイレクト先の生成に使用されます。
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	// JWTSecret はJWT署名に使用される共有シークレットです。
	JWTSecret string `env:"JWT_SECRET"`

	DB          DB          `envPrefix:"DB_"`
	Redis       Redis       `envPrefix:"REDIS_"`
	NowPayments NowPayments `envPrefix:"NOWPAYMENTS_"`
	Admin       Admin       `envPrefix:"ADMIN_"`
}

// DB はMySQL接続パラメータです。
type DB struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"3306"`
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"trading_academy"`
}

// DSN はGORMのMySQLドライバに渡す接続文字列を生成します。
func (d DB) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// Redis はRedis接続パラメータです。Hostが空の場合、キャッシュは無効になります。
type Redis struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
}

// NowPayments は決済プロバイダーの認証情報です。
// IPNSecretはプロバイダーからのコールバック検証用の共有シークレットです。
type NowPayments struct {
	APIKey    string `env:"API_KEY"`
	IPNSecret string `env:"IPN_SECRET"`
	BaseURL   string `env:"BASE_URL" envDefault:"https://api.nowpayments.io/v1"`

	// IPNCallbackURL はプロバイダーが決済状況を通知する公開URLです。
	// 未設定の場合、インボイスにコールバックURLは含まれません。
	IPNCallbackURL string `env:"IPN_CALLBACK_URL"`
}

// Admin は起動時にブートストラップされる管理者アカウントの認証情報です。
type Admin struct {
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Load は.envファイル（存在する場合）と環境変数から設定を読み込みます。
func Load() (Config, error) {
	// .envはローカル開発用。存在しなくてもエラーにしない
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
