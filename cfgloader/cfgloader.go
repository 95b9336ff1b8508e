// Package cfgloader loads and validates configuration at the start of an application.
package cfgloader

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rise-and-shine/redisgroup/observability/logger"
	"github.com/rise-and-shine/redisgroup/val"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"
)

// selfValidator is implemented by config types with checks struct tags cannot express,
// such as elasticache.Config.
type selfValidator interface {
	Validate() error
}

// Load reads ${ENVIRONMENT}.yaml from the config directory, expands ${VAR} references,
// applies `default` tags, decodes it into T and validates the result.
//
// Validation checks `validate` tags through package val, then calls Validate
// on the config and on every nested field whose type has a Validate() error method.
//
// Example:
//
//	type Config struct {
//	    Redis  elasticache.Config `yaml:"redis"`
//	    Logger logger.Config      `yaml:"logger"`
//	}
func Load[T any](opts ...Option) (T, error) {
	var config T
	o := buildOptions(opts)

	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		return config, errx.New("[cfgloader]: type parameter must not be a pointer")
	}

	_ = godotenv.Load()

	env, err := defineEnvironment(o.Environment)
	if err != nil {
		return config, err
	}

	data, err := readConfigFile(filepath.Join(o.Dir, env+".yaml"))
	if err != nil {
		return config, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	// Defaults go first so that values written explicitly in the file, zero included, win.
	if err = defaults.Set(&config); err != nil {
		return config, errx.Wrap(err)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"environment": env}))
	}

	if err = validateConfig(&config); err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"environment": env}))
	}

	if !o.Silent {
		printConfig(config, env)
	}

	return config, nil
}

// MustLoad is Load that logs the error and exits the process on failure.
func MustLoad[T any](opts ...Option) T {
	config, err := Load[T](opts...)
	if err != nil {
		logger.Named("cfgloader").Fatalx(err)
	}
	return config
}

func defineEnvironment(override string) (string, error) {
	env := override
	if env == "" {
		env = os.Getenv("ENVIRONMENT")
	}
	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		return "", errx.New(
			"[cfgloader]: ENVIRONMENT is not set or invalid. Choices are: production, staging, dev, local, test",
			errx.WithType(errx.T_Validation),
			errx.WithCode(CodeInvalidEnvironment),
			errx.WithDetails(errx.D{"environment": env}),
		)
	}
	return env, nil
}

func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errx.New(
			"[cfgloader]: config file not found, make sure a yaml file exists for each environment",
			errx.WithType(errx.T_NotFound),
			errx.WithCode(CodeConfigNotFound),
			errx.WithDetails(errx.D{"path": path}),
		)
	}
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"path": path}))
	}
	return data, nil
}

func validateConfig(config any) error {
	if err := val.ValidateStruct(config, CodeInvalidConfig); err != nil {
		return err
	}
	return runSelfValidators(reflect.ValueOf(config))
}

// runSelfValidators calls Validate on val or, if it has none, on its struct fields.
func runSelfValidators(val reflect.Value) error {
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		if sv, ok := val.Interface().(selfValidator); ok {
			return sv.Validate()
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil
	}

	for i := range val.NumField() {
		field := val.Field(i)
		if !val.Type().Field(i).IsExported() {
			continue
		}
		if field.CanAddr() {
			field = field.Addr()
		}
		if err := runSelfValidators(field); err != nil {
			return err
		}
	}
	return nil
}
