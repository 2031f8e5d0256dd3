// internal/pkg/config/secrets.go
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretValueGetter is the subset of the Secrets Manager client used here.
type SecretValueGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// secretFields maps keys of the shop's secret document onto the config.
var secretFields = map[string]func(c *Config, v string){
	"DB_PASSWORD":           func(c *Config, v string) { c.Database.Password = v },
	"REDIS_PASSWORD":        func(c *Config, v string) { c.Redis.Password = v },
	"AWS_SECRET_ACCESS_KEY": func(c *Config, v string) { c.Storage.SecretAccessKey = v },
	"AWS_ACCESS_KEY_ID":     func(c *Config, v string) { c.Storage.AccessKeyID = v },
}

// SecretDocument reads one JSON object secret, e.g. {"DB_PASSWORD": "..."}.
type SecretDocument struct {
	client SecretValueGetter
	name   string
	logger *slog.Logger
}

// NewSecretDocument wraps client; name is the secret id or ARN.
func NewSecretDocument(client SecretValueGetter, name string, logger *slog.Logger) *SecretDocument {
	return &SecretDocument{
		client: client,
		name:   name,
		logger: logger.With(slog.String("component", "secrets")),
	}
}

// Fetch returns the current version of the document.
func (d *SecretDocument) Fetch(ctx context.Context) (map[string]string, error) {
	out, err := d.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(d.name),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read secret %s: %w", d.name, err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s is binary, expected a JSON object", d.name)
	}

	values := make(map[string]string)
	if err := json.Unmarshal([]byte(*out.SecretString), &values); err != nil {
		return nil, fmt.Errorf("failed to decode secret %s: %w", d.name, err)
	}
	return values, nil
}

// Apply overwrites the sensitive fields of c with whatever the document holds.
// It returns how many fields were replaced.
func (d *SecretDocument) Apply(ctx context.Context, c *Config) (int, error) {
	values, err := d.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for key, set := range secretFields {
		v, ok := values[key]
		if !ok || v == "" {
			continue
		}
		set(c, v)
		applied++
	}

	d.logger.InfoContext(ctx, "secrets applied",
		slog.String("secret", d.name),
		slog.Int("fields", applied))
	return applied, nil
}

// resolveSecrets is a no-op unless SECRETS_PROVIDER=aws.
func (c *Config) resolveSecrets(ctx context.Context, logger *slog.Logger) error {
	if c.Secrets.Provider != "aws" {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.Secrets.Region))
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	doc := NewSecretDocument(secretsmanager.NewFromConfig(awsCfg), c.Secrets.SecretName, logger)
	_, err = doc.Apply(ctx, c)
	return err
}
