// Command vu128 is a developer utility for poking at vu128 encodings:
//
//	vu128 [-w width] [-t type] encode <value>...
//	vu128 [-w width] [-t type] decode <hex-bytes>...
//	vu128 len <prefix-byte>...
//
// Each argument is one scalar; the tool adds no framing or container
// around the encoded bytes.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/blukai/vu128"
	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
	"github.com/phuslu/log"
	"lukechampine.com/uint128"
)

type Config struct {
	Width int    `envconfig:"VU128_WIDTH" default:"64"`
	Type  string `envconfig:"VU128_TYPE" default:"uint"`
}

func loadConfig() (*Config, error) {
	config := new(Config)
	if err := envconfig.Process("", config); err != nil {
		return nil, err
	}
	return config, nil
}

func configureLogger() *log.Logger {
	logger := log.DefaultLogger

	// https://github.com/phuslu/log?tab=readme-ov-file#pretty-console-writer
	logger.Caller = 1
	logger.TimeFormat = "15:04:05"
	logger.Writer = &log.ConsoleWriter{
		ColorOutput:    true,
		QuoteString:    true,
		EndWithMessage: true,
	}

	return &logger
}

var (
	big1    = big.NewInt(1)
	big128  = new(big.Int).Lsh(big1, 128)    // 2^128
	bigMask = new(big.Int).Sub(big128, big1) // 2^128 - 1
	bigMinI = new(big.Int).Neg(new(big.Int).Lsh(big1, 127))
	bigMaxI = new(big.Int).Sub(new(big.Int).Lsh(big1, 127), big1)
)

func parseUint128(s string) (uint128.Uint128, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return uint128.Zero, fmt.Errorf("invalid integer %q", s)
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("%s does not fit in 128 unsigned bits", s)
	}
	return uint128.FromBig(v), nil
}

// parseInt128 returns the two's-complement bit pattern of a signed
// 128-bit literal.
func parseInt128(s string) (uint128.Uint128, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return uint128.Zero, fmt.Errorf("invalid integer %q", s)
	}
	if v.Cmp(bigMinI) < 0 || v.Cmp(bigMaxI) > 0 {
		return uint128.Zero, fmt.Errorf("%s does not fit in 128 signed bits", s)
	}
	// big.Int bitwise ops act on the two's-complement form, so
	// masking to 128 bits yields the pattern directly
	return uint128.FromBig(new(big.Int).And(v, bigMask)), nil
}

func formatInt128(pattern uint128.Uint128) string {
	v := pattern.Big()
	if v.Bit(127) == 1 {
		v.Sub(v, big128)
	}
	return v.String()
}

func encodeArg(config *Config, arg string) ([]byte, error) {
	buf := make([]byte, vu128.MaxLen128)

	var (
		n   int
		err error
	)
	switch {
	case config.Type == "uint" && config.Width == 32:
		var v uint64
		if v, err = strconv.ParseUint(arg, 0, 32); err == nil {
			n = vu128.EncodeUint32(buf, uint32(v))
		}
	case config.Type == "uint" && config.Width == 64:
		var v uint64
		if v, err = strconv.ParseUint(arg, 0, 64); err == nil {
			n = vu128.EncodeUint64(buf, v)
		}
	case config.Type == "uint" && config.Width == 128:
		var v uint128.Uint128
		if v, err = parseUint128(arg); err == nil {
			n = vu128.EncodeUint128(buf, v)
		}
	case config.Type == "int" && config.Width == 32:
		var v int64
		if v, err = strconv.ParseInt(arg, 0, 32); err == nil {
			n = vu128.EncodeInt32(buf, int32(v))
		}
	case config.Type == "int" && config.Width == 64:
		var v int64
		if v, err = strconv.ParseInt(arg, 0, 64); err == nil {
			n = vu128.EncodeInt64(buf, v)
		}
	case config.Type == "int" && config.Width == 128:
		var v uint128.Uint128
		if v, err = parseInt128(arg); err == nil {
			n = vu128.EncodeInt128(buf, v)
		}
	case config.Type == "float" && config.Width == 32:
		var v float64
		if v, err = strconv.ParseFloat(arg, 32); err == nil {
			n = vu128.EncodeFloat32(buf, float32(v))
		}
	case config.Type == "float" && config.Width == 64:
		var v float64
		if v, err = strconv.ParseFloat(arg, 64); err == nil {
			n = vu128.EncodeFloat64(buf, v)
		}
	default:
		err = fmt.Errorf("unsupported type/width combination %s%d", config.Type, config.Width)
	}
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

func decodeArg(config *Config, arg string) (value string, n int, err error) {
	cleaned := strings.NewReplacer(" ", "", "0x", "", ",", "").Replace(arg)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return "", 0, fmt.Errorf("invalid hex %q: %w", arg, err)
	}
	if len(data) == 0 {
		return "", 0, fmt.Errorf("empty input %q", arg)
	}

	// decoders always read a full max-width buffer; the tail past the
	// actual encoding is zero here
	buf := make([]byte, vu128.MaxLen128)
	copy(buf, data)

	switch {
	case config.Type == "uint" && config.Width == 32:
		v, consumed := vu128.DecodeUint32(buf[:vu128.MaxLen32])
		value, n = strconv.FormatUint(uint64(v), 10), consumed
	case config.Type == "uint" && config.Width == 64:
		v, consumed := vu128.DecodeUint64(buf[:vu128.MaxLen64])
		value, n = strconv.FormatUint(v, 10), consumed
	case config.Type == "uint" && config.Width == 128:
		v, consumed := vu128.DecodeUint128(buf)
		value, n = v.String(), consumed
	case config.Type == "int" && config.Width == 32:
		v, consumed := vu128.DecodeInt32(buf[:vu128.MaxLen32])
		value, n = strconv.FormatInt(int64(v), 10), consumed
	case config.Type == "int" && config.Width == 64:
		v, consumed := vu128.DecodeInt64(buf[:vu128.MaxLen64])
		value, n = strconv.FormatInt(v, 10), consumed
	case config.Type == "int" && config.Width == 128:
		v, consumed := vu128.DecodeInt128(buf)
		value, n = formatInt128(v), consumed
	case config.Type == "float" && config.Width == 32:
		v, consumed := vu128.DecodeFloat32(buf[:vu128.MaxLen32])
		value, n = strconv.FormatFloat(float64(v), 'g', -1, 32), consumed
	case config.Type == "float" && config.Width == 64:
		v, consumed := vu128.DecodeFloat64(buf[:vu128.MaxLen64])
		value, n = strconv.FormatFloat(v, 'g', -1, 64), consumed
	default:
		err = fmt.Errorf("unsupported type/width combination %s%d", config.Type, config.Width)
	}
	return value, n, err
}

func erringMain() error {
	config, err := loadConfig()
	if err != nil {
		return fmt.Errorf("could not process config: %w", err)
	}

	logger := configureLogger()

	flag.IntVar(&config.Width, "w", config.Width, "integer width in bits (32, 64 or 128)")
	flag.StringVar(&config.Type, "t", config.Type, "value type (uint, int or float)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		return fmt.Errorf("usage: vu128 [-w width] [-t type] encode|decode|len <arg>...")
	}
	subcommand := args[0]

	var result *multierror.Error
	for _, arg := range args[1:] {
		switch subcommand {
		case "encode":
			data, err := encodeArg(config, arg)
			if err != nil {
				logger.Error().Str("arg", arg).Msgf("could not encode: %v", err)
				result = multierror.Append(result, fmt.Errorf("encode %q: %w", arg, err))
				continue
			}
			fmt.Printf("%x\n", data)
		case "decode":
			value, n, err := decodeArg(config, arg)
			if err != nil {
				logger.Error().Str("arg", arg).Msgf("could not decode: %v", err)
				result = multierror.Append(result, fmt.Errorf("decode %q: %w", arg, err))
				continue
			}
			fmt.Printf("%s (%d bytes)\n", value, n)
		case "len":
			b, err := strconv.ParseUint(arg, 0, 8)
			if err != nil {
				logger.Error().Str("arg", arg).Msgf("could not parse prefix byte: %v", err)
				result = multierror.Append(result, fmt.Errorf("len %q: %w", arg, err))
				continue
			}
			fmt.Printf("%d\n", vu128.EncodedLen(byte(b)))
		default:
			return fmt.Errorf("unknown subcommand %q", subcommand)
		}
	}

	return result.ErrorOrNil()
}

func main() {
	if err := erringMain(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
