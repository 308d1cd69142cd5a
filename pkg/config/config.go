// Package config는 애플리케이션 설정을 관리하는 패키지입니다.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config 인터페이스는 설정 값에 액세스하기 위한 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string
	GetAll() map[string]interface{}
	// Unmarshal은 전체 설정을 yaml 태그 기준으로 구조체에 채웁니다.
	Unmarshal(out interface{}) error
}

// viperConfig는 viper를 사용하여 Config 인터페이스를 구현합니다.
type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

func (c *viperConfig) GetAll() map[string]interface{} {
	return c.v.AllSettings()
}

func (c *viperConfig) Unmarshal(out interface{}) error {
	return c.v.Unmarshal(out, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
}

// 설정 디렉토리 경로
const configDir = "configs"

// Load는 지정된 서비스 이름에 해당하는 설정 파일을 로드합니다.
// configs/{APP_ENV}/{service}.yaml을 먼저 찾고, 없으면 configs/example을 사용합니다.
// {SERVICE}_DATABASE_HOST 같은 환경 변수가 파일 값을 덮어씁니다.
func Load(serviceName string) (Config, error) {
	return LoadFrom(configDir, serviceName)
}

// LoadFrom은 설정 루트 디렉토리를 지정하여 로드합니다.
func LoadFrom(root, serviceName string) (Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev" // 기본 환경은 dev
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// 환경 변수 바인딩 설정
	v.SetEnvPrefix(strings.ToUpper(strings.ReplaceAll(serviceName, "-", "_")))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(serviceName)
	v.AddConfigPath(filepath.Join(root, env))

	if err := v.ReadInConfig(); err != nil {
		// 예제 설정 파일 시도
		v.AddConfigPath(filepath.Join(root, "example"))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
