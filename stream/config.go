package stream

// Config holds the YAML settings for the MQTT connection and the stream loop.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		}
	} `yaml:"mqtt"`
	Stream struct {
		FrameRate         float64 `yaml:"frameRate"`
		AnimationSeconds  float64 `yaml:"animationSeconds"`
		TransitionSeconds float64 `yaml:"transitionSeconds"`
	} `yaml:"stream"`
}
