package pipeline

type Config struct {
	TestSize float64 `envconfig:"SHOP_TEST_SIZE" default:"0.4" toml:"test_size"`
	Seed     uint32  `envconfig:"SHOP_SEED" default:"0" toml:"seed"`
}
