package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// Supported city catalog backends.
const (
	CityStoreRedis  = "redis"
	CityStoreSQLite = "sqlite"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Storage holds the Redis and city catalog settings.
	Storage StorageConfig `mapstructure:",squash"`

	// Engine holds the tuning knobs of the matrix cache and batch evaluation.
	Engine EngineConfig `mapstructure:",squash"`

	// CostModel holds the baseline cost model parameters.
	CostModel CostModelConfig `mapstructure:",squash"`
}

// StorageConfig holds connection details of the backing stores.
type StorageConfig struct {
	// RedisURL is the Redis connection string, redis://[:password@]host[:port][/database].
	RedisURL string `mapstructure:"REDIS_URL" required:"true"`
	// CityStore selects the city catalog backend (redis or sqlite).
	CityStore string `mapstructure:"CITY_STORE" default:"redis"`
	// SQLitePath is the database file used when CityStore is sqlite.
	SQLitePath string `mapstructure:"SQLITE_PATH" default:"cities.db"`
	// ScenarioTTLSeconds is the default lifetime of stored scenarios. 0 keeps them forever.
	ScenarioTTLSeconds int `mapstructure:"SCENARIO_TTL_SECONDS" default:"0"`
}

// EngineConfig holds evaluation limits.
type EngineConfig struct {
	// MatrixCacheSize is how many distance matrices are kept in memory.
	MatrixCacheSize int `mapstructure:"MATRIX_CACHE_SIZE" default:"8"`
	// QuoteBatchConcurrency bounds the parallelism of batch quotes.
	QuoteBatchConcurrency int `mapstructure:"QUOTE_BATCH_CONCURRENCY" default:"8"`
	// QuoteBatchMaxItems caps the number of quotes in a single batch request.
	QuoteBatchMaxItems int `mapstructure:"QUOTE_BATCH_MAX_ITEMS" default:"1000"`
}

// CostModelConfig holds the economic constants and the per-mode tables.
type CostModelConfig struct {
	CarbonCostPerKg    float64 `mapstructure:"CARBON_COST_PER_KG" default:"5.0"`
	TimeValuePerKgHour float64 `mapstructure:"TIME_VALUE_PER_KG_HOUR" default:"2.0"`
	AvgUnitWeightKg    float64 `mapstructure:"AVG_UNIT_WEIGHT_KG" default:"2.5"`
	ConsumptionRate    float64 `mapstructure:"CONSUMPTION_RATE" default:"0.05"`
	ReferenceWeightKg  float64 `mapstructure:"REFERENCE_WEIGHT_KG" default:"1000.0"`

	AirTakeoffCost  float64 `mapstructure:"AIR_TAKEOFF_COST" default:"6500.0"`
	AirTakeoffDecay float64 `mapstructure:"AIR_TAKEOFF_DECAY" default:"0.008"`

	ServiceWindowHours float64 `mapstructure:"SERVICE_WINDOW_HOURS" default:"48"`
	ServicePenaltyBase float64 `mapstructure:"SERVICE_PENALTY_BASE" default:"1000.0"`
	ServicePenaltyRate float64 `mapstructure:"SERVICE_PENALTY_RATE" default:"0.04"`

	RoadCostPerTonneKm     float64 `mapstructure:"ROAD_COST_PER_TONNE_KM" default:"3.6"`
	RoadCO2GramsPerTonneKm float64 `mapstructure:"ROAD_CO2_G_PER_TONNE_KM" default:"101"`
	RoadAvgSpeedKmh        float64 `mapstructure:"ROAD_AVG_SPEED_KMH" default:"30"`

	RailCostPerTonneKm     float64 `mapstructure:"RAIL_COST_PER_TONNE_KM" default:"1.6"`
	RailCO2GramsPerTonneKm float64 `mapstructure:"RAIL_CO2_G_PER_TONNE_KM" default:"11.5"`
	RailAvgSpeedKmh        float64 `mapstructure:"RAIL_AVG_SPEED_KMH" default:"35"`

	AirCostPerTonneKm     float64 `mapstructure:"AIR_COST_PER_TONNE_KM" default:"18"`
	AirCO2GramsPerTonneKm float64 `mapstructure:"AIR_CO2_G_PER_TONNE_KM" default:"610"`
	AirAvgSpeedKmh        float64 `mapstructure:"AIR_AVG_SPEED_KMH" default:"450"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Storage.CityStore != CityStoreRedis && config.Storage.CityStore != CityStoreSQLite {
		return nil, fmt.Errorf("unsupported CITY_STORE %q (want %s or %s)", config.Storage.CityStore, CityStoreRedis, CityStoreSQLite)
	}

	return &config, nil
}

// processTags walks the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	default:
		return v.IsZero()
	}
}
