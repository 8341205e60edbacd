package config

import (
	"fmt"
	"path/filepath"
	"sort"

	"bikeshare/utils"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const configFilepath = "./explorer/config/config.yaml"

// tripColumns contains the header name of each field to analyze
type tripColumns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time" validate:"required"`
	Duration     string `yaml:"duration" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

// ExplorerConfig contains everything the explorer needs to run a session
// + Cities: city name -> dataset file, relative to DatasetsPath
// + Months, Days: canonical lower-case names accepted as filters
// + Columns: CSV header names of the trip fields
// + Reporters: reporter types to run, in order
type ExplorerConfig struct {
	LogLevel           string            `yaml:"log_level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	DatasetsPath       string            `yaml:"datasets_path" validate:"required"`
	Cities             map[string]string `yaml:"cities" validate:"len=3,dive,keys,required,endkeys,required"`
	Months             []string          `yaml:"months" validate:"len=6,unique,dive,required"`
	Days               []string          `yaml:"days" validate:"len=7,unique,dive,required"`
	Columns            tripColumns       `yaml:"columns"`
	StartTimeLayout    string            `yaml:"start_time_layout" validate:"required"`
	CSVDelimiter       string            `yaml:"csv_delimiter" validate:"required,len=1"`
	PageSize           int               `yaml:"page_size" validate:"gt=0"`
	SeparatorWidth     int               `yaml:"separator_width" validate:"gt=0"`
	AffirmativeAnswers []string          `yaml:"affirmative_answers" validate:"min=1,dive,required"`
	Reporters          []string          `yaml:"reporters" validate:"min=1,dive,oneof=time-reporter station-reporter duration-reporter user-reporter"`
}

// LoadConfig reads the explorer config from its default location
func LoadConfig() (*ExplorerConfig, error) {
	return LoadConfigFromFile(configFilepath)
}

func LoadConfigFromFile(filepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(filepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	err = validator.New().Struct(explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid explorer config: %w", err)
	}

	return &explorerConfig, nil
}

// GetDatasetPath returns the path of the dataset of the given city and false if the city is unknown
func (ec *ExplorerConfig) GetDatasetPath(city string) (string, bool) {
	filename, ok := ec.Cities[city]
	if !ok {
		return "", false
	}
	return filepath.Join(ec.DatasetsPath, filename), true
}

// GetCityNames returns the supported cities sorted alphabetically
func (ec *ExplorerConfig) GetCityNames() []string {
	cities := make([]string, 0, len(ec.Cities))
	for city := range ec.Cities {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}
