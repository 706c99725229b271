package dataset

type Config struct {
	StrictCategorical bool `envconfig:"SHOP_STRICT_CATEGORICAL" default:"false" toml:"strict_categorical"`
}
