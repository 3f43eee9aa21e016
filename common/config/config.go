package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var Version = "v0.1.0"
var StartTime = time.Now().Unix()

var SystemName = "Profileinator"
var ServiceName = "profileinator"
var InstanceId = uuid.New().String()[:8]

var DebugEnabled = false

// Provider settings. The API key is the only required piece of
// configuration; everything else has a usable default.
var OpenAIAPIKey = ""
var OpenAIBaseURL = "https://api.openai.com"
var DescribeModel = "gpt-4o"
var ImageModel = "gpt-image-1"
var ImageSize = "1024x1024"

// RelayTimeout bounds a single outbound provider call, in seconds.
var RelayTimeout = 120

var MinVariants = 1
var MaxVariants = 4
var DefaultVariants = 4

// MaxUploadBytes caps the multipart image field.
var MaxUploadBytes int64 = 8 << 20

func init() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	DebugEnabled = strings.ToLower(os.Getenv("DEBUG")) == "true"
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		OpenAIBaseURL = strings.TrimSuffix(v, "/")
	}
	if v := os.Getenv("DESCRIBE_MODEL"); v != "" {
		DescribeModel = v
	}
	if v := os.Getenv("IMAGE_MODEL"); v != "" {
		ImageModel = v
	}
	if v := os.Getenv("IMAGE_SIZE"); v != "" {
		ImageSize = v
	}
	RelayTimeout = GetOrDefaultInt("RELAY_TIMEOUT", RelayTimeout)
	MaxVariants = GetOrDefaultInt("MAX_VARIANTS", MaxVariants)
	if DefaultVariants > MaxVariants {
		DefaultVariants = MaxVariants
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			MaxUploadBytes = n
		}
	}
}

// Validate fails fast on operator mistakes so a misconfigured process
// never starts serving.
func Validate() error {
	if OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	if MinVariants < 1 || MaxVariants < MinVariants {
		return errors.New("invalid variant bounds")
	}
	return nil
}

func GetOrDefaultInt(env string, defaultValue int) int {
	if env == "" || os.Getenv(env) == "" {
		return defaultValue
	}
	num, err := strconv.Atoi(os.Getenv(env))
	if err != nil {
		return defaultValue
	}
	return num
}
