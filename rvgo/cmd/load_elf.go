package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	cannon "github.com/ethereum-optimism/optimism/cannon/cmd"
	"github.com/ethereum-optimism/optimism/op-service/ioutil"

	"github.com/ethereum-optimism/rvisa/rvgo/program"
)

var OutFilePerm = os.FileMode(0o755)

var (
	LoadELFPathFlag = &cli.PathFlag{
		Name:      "path",
		Usage:     "path of the RISC-V ELF file",
		TakesFile: true,
		Required:  true,
		EnvVars:   prefixEnvVars("LOAD_ELF_PATH"),
	}
	LoadELFOutFlag = &cli.PathFlag{
		Name:      "out",
		Usage:     "path of the raw binary to write, gzipped when it ends in .gz",
		TakesFile: true,
		Value:     "program.bin",
		EnvVars:   prefixEnvVars("LOAD_ELF_OUT"),
	}
	LoadELFMetaFlag = &cli.PathFlag{
		Name:      "meta",
		Usage:     "path of the JSON metadata to write (base address and symbols), '-' for stdout, empty to skip",
		TakesFile: true,
		Value:     "meta.json",
		EnvVars:   prefixEnvVars("LOAD_ELF_META"),
	}
)

func LoadELF(ctx *cli.Context) error {
	elfPath := ctx.Path(LoadELFPathFlag.Name)
	p, err := program.Open(elfPath)
	if err != nil {
		return err
	}
	if len(p.Segments) == 0 {
		return fmt.Errorf("ELF %q has no executable segments", elfPath)
	}
	if err := writeImage(ctx.Path(LoadELFOutFlag.Name), p.Image()); err != nil {
		return fmt.Errorf("failed to write program image: %w", err)
	}
	if err := cannon.WriteJSON(ctx.Path(LoadELFMetaFlag.Name), makeMetadata(p)); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}

func writeImage(path string, image []byte) error {
	f, err := ioutil.NewAtomicWriterCompressed(path, OutFilePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(image); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

var LoadELFCommand = &cli.Command{
	Name:        "load-elf",
	Usage:       "Extract the executable segments of a RISC-V ELF into a raw binary",
	Description: "Extract the executable segments of a RISC-V ELF into a raw binary, with a metadata file holding the base address and symbols",
	Action:      LoadELF,
	Flags: []cli.Flag{
		LoadELFPathFlag,
		LoadELFOutFlag,
		LoadELFMetaFlag,
	},
}
