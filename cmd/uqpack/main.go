// Command uqpack is the thin CLI shell described in spec §6.3: parse a
// JSON string, encode it, print the encoded string, decode it back, and
// print the round-tripped JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jontey/uqpack"
	"github.com/jontey/uqpack/internal/config"
	"github.com/jontey/uqpack/internal/logging"
	"github.com/jontey/uqpack/pkg/compress"
	"github.com/jontey/uqpack/pkg/serialize"
	"github.com/rs/zerolog/log"
)

var (
	cli  config.Cli
	meta = config.Meta{
		ID:     "uqpack",
		Name:   "UQPack",
		Desc:   "Encode and decode compact, URL-safe structured payloads",
		URL:    "https://github.com/jontey/uqpack",
		Author: "jontey",
	}
	version = "dev"
)

func main() {
	meta.Version = version

	_ = kong.Parse(&cli,
		kong.Name(meta.ID),
		kong.Description(fmt.Sprintf("%s. More info: %s", meta.Desc, meta.URL)),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	logging.Configure(cli)

	if err := run(cli); err != nil {
		log.Error().Err(err).Msg("uqpack failed")
		os.Exit(1)
	}
}

func run(cli config.Cli) error {
	var value any
	if err := json.Unmarshal([]byte(cli.JSON), &value); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compression, err := compressionKind(cli.Compression)
	if err != nil {
		return err
	}

	encoded, err := uqpack.Encode(value,
		uqpack.WithCompression(compression),
		uqpack.WithSerialization(serialize.MessagePack))
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Println(encoded)

	decoded, err := uqpack.Decode[any](encoded)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	out, err := json.Marshal(decoded)
	if err != nil {
		return fmt.Errorf("marshal round-tripped value: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

func compressionKind(name string) (compress.Kind, error) {
	switch name {
	case "", "lz4":
		return compress.Lz4, nil
	case "none":
		return compress.None, nil
	case "zstd":
		return compress.Zstd, nil
	default:
		return 0, fmt.Errorf("unsupported compression %q", name)
	}
}
