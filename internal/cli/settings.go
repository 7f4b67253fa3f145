package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/roach88/embedder/internal/ir"
)

// EnvPrefix prefixes environment overrides, e.g. EMBEDDER_EMBED_DIRECTORY.
const EnvPrefix = "EMBEDDER"

// Setting keys, shared by flags, environment and viper.
const (
	keyEmbedDirectory = "embed-directory"
	keyStripGroup     = "strip-group"
	keyStripVersion   = "strip-version"
)

// settingHeaders maps each setting key to the property it overrides.
var settingHeaders = map[string]string{
	keyEmbedDirectory: ir.HeaderEmbedDirectory,
	keyStripGroup:     ir.HeaderEmbedStripGroup,
	keyStripVersion:   ir.HeaderEmbedStripVersion,
}

// addSettingsFlags registers the embed placement flags on cmd.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().String(keyEmbedDirectory, "", "directory inside the bundle for embedded dependencies")
	cmd.Flags().Bool(keyStripGroup, true, "drop the groupId directory level")
	cmd.Flags().Bool(keyStripVersion, false, "name embedded files artifactId.extension")
}

// layerSettings returns a copy of props with the Embed-* settings resolved
// in precedence order: changed flag, environment, project property, default.
func layerSettings(cmd *cobra.Command, props ir.Properties) (ir.Properties, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyEmbedDirectory, props.Get(ir.HeaderEmbedDirectory))
	v.SetDefault(keyStripGroup, props.GetOr(ir.HeaderEmbedStripGroup, "true"))
	v.SetDefault(keyStripVersion, props.Get(ir.HeaderEmbedStripVersion))

	out := props.Clone()
	for key, header := range settingHeaders {
		if flag := cmd.Flags().Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", key, err)
			}
		}
		out[header] = v.GetString(key)
	}
	return out, nil
}
