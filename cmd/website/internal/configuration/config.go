package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"" description:"AWS endpoint URL. Set this for LocalStack or MinIO"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"us-east-1" description:"AWS region"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket          string `flag:"awsbucket" env:"S3_BUCKET_NAME" default:"" description:"S3 bucket holding the photos"`
	SessionSecret      string `flag:"sessionsecret" env:"SECRET_KEY" default:"change-me-in-production" description:"Secret for signing session cookies"`
	Host               string `flag:"host" env:"HOST" default:"localhost:5000" description:"The address and port to bind the HTTP server to"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"info" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxUploadWorkers   int    `flag:"muw" env:"MAX_UPLOAD_WORKERS" default:"4" description:"Maximum number of files uploaded to S3 at once per request"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
