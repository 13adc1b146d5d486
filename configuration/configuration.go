package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Flatfile          string `usage:"ProteomeScout flatfile to load"`
	Columns           int    `usage:"expected number of columns in the flatfile header"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	Query             string `usage:"print the annotations of this accession as JSON and exit"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() *Configuration {
	return &Configuration{
		HttpAddr:          ":8080",
		Flatfile:          "example.dat",
		Columns:           19,
		EnableCompression: true,
		ShowBanner:        true,
	}
}
