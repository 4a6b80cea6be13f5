package stream

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Show struct {
		FrameRate  float64 `yaml:"frameRate"`
		BandLength float64 `yaml:"bandLength"`
		Travel     float64 `yaml:"travel"`
	} `yaml:"show"`
}
