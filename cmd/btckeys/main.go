// Command btckeys derives Bitcoin addresses and WIF-encoded secrets from
// a raw private key.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/justinian336/bitcoin/pkg/secp256k1"
)

func main() {
	app := &cli.App{
		Name:  "btckeys",
		Usage: "derive addresses and WIF from a secp256k1 secret",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "secret",
				Usage:    "private key as a hex string",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "testnet",
				Usage: "use testnet version bytes",
			},
			&cli.BoolFlag{
				Name:  "uncompressed",
				Usage: "use the uncompressed SEC encoding",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "address",
				Usage:  "print the P2PKH address for the secret",
				Action: runAddress,
			},
			{
				Name:   "wif",
				Usage:  "print the wallet import format of the secret",
				Action: runWIF,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "btckeys:", err)
		os.Exit(1)
	}
}

func keyFromFlags(c *cli.Context) (*secp256k1.PrivateKey, error) {
	secret, ok := new(big.Int).SetString(c.String("secret"), 16)
	if !ok {
		return nil, fmt.Errorf("secret %q is not valid hex", c.String("secret"))
	}
	return secp256k1.NewPrivateKey(secret)
}

func runAddress(c *cli.Context) error {
	key, err := keyFromFlags(c)
	if err != nil {
		return err
	}
	fmt.Println(key.PublicKey().Address(!c.Bool("uncompressed"), c.Bool("testnet")))
	return nil
}

func runWIF(c *cli.Context) error {
	key, err := keyFromFlags(c)
	if err != nil {
		return err
	}
	fmt.Println(key.WIF(!c.Bool("uncompressed"), c.Bool("testnet")))
	return nil
}
