package initializers

import (
	"context"
	"esign-sender/config"
	s3client "esign-sender/s3"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitS3(t *testing.T) {
	useSSL := false
	setConf := func(endpoint string) {
		conf := new(config.Configuration)
		conf.S3.Endpoint = endpoint
		conf.S3.AccessKeyID = "key"
		conf.S3.SecretAccessKey = "secret"
		conf.S3.UseSSL = &useSSL
		config.Conf = conf
		s3client.Client = nil
	}
	t.Cleanup(func() {
		config.Conf = nil
		s3client.Client = nil
	})

	t.Run(`without endpoint check`, func(t *testing.T) {
		setConf("")
		InitS3(context.TODO())
		require.Nil(t, s3client.Client)
	})

	t.Run(`unreachable endpoint check`, func(t *testing.T) {
		setConf("127.0.0.1:1")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		InitS3(ctx)
		require.Nil(t, s3client.Client)
	})
}
