package main

import (
	"debug/elf"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ksco/embed/pkg/objfile"
)

func newInspectCommand(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <object-file>",
		Short: "Print the sections and symbols of a relocatable object",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &UsageError{Msg: "expected exactly one object file", Usage: cmd.UseLine()}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(fs, cmd.OutOrStdout(), args[0])
		},
	}
}

func runInspect(fs afero.Fs, w io.Writer, path string) error {
	file, err := objfile.NewFile(fs, path)
	if err != nil {
		return &InputReadError{Path: path, Err: err}
	}

	ft := objfile.GetFileType(file.Contents)
	if ft != objfile.FileTypeObject {
		return errors.Errorf("%s: not a relocatable object (%s)", path, objfile.FileTypeStringer{FileType: ft})
	}

	in, err := objfile.NewInputFile(file)
	if err != nil {
		return err
	}

	machine := objfile.MachineTypeStringer{MachineType: objfile.GetMachineTypeFromContents(file.Contents)}
	fmt.Fprintf(w, "%s: %s, %s, %d sections, %d symbols (%d global)\n",
		path, objfile.FileTypeStringer{FileType: ft}, machine,
		len(in.ElfSections), len(in.ElfSyms), len(in.GetGlobalSyms()))

	sections := tablewriter.NewWriter(w)
	sections.SetHeader([]string{"Nr", "Name", "Type", "Flags", "Offset", "Size", "Link", "Info"})
	for i, shdr := range in.ElfSections {
		sections.Append([]string{
			strconv.Itoa(i),
			in.SectionName(i),
			elf.SectionType(shdr.Type).String(),
			elf.SectionFlag(shdr.Flags).String(),
			fmt.Sprintf("%#x", shdr.Offset),
			strconv.FormatUint(shdr.Size, 10),
			strconv.FormatUint(uint64(shdr.Link), 10),
			strconv.FormatUint(uint64(shdr.Info), 10),
		})
	}
	sections.Render()

	if len(in.ElfSyms) == 0 {
		return nil
	}

	symbols := tablewriter.NewWriter(w)
	symbols.SetHeader([]string{"Num", "Name", "Bind", "Type", "Ndx", "Value", "Size"})
	for i, sym := range in.ElfSyms {
		symbols.Append([]string{
			strconv.Itoa(i),
			in.SymbolName(i),
			elf.SymBind(sym.Bind()).String(),
			elf.SymType(sym.Type()).String(),
			strconv.FormatUint(uint64(sym.Shndx), 10),
			fmt.Sprintf("%#x", sym.Val),
			strconv.FormatUint(sym.Size, 10),
		})
	}
	symbols.Render()
	return nil
}
