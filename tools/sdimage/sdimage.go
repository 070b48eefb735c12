// Package sdimage creates SD card images for flash carts that boot games from
// a FAT32 card, like the EZ-Flash Omega.
package sdimage

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/partition/mbr"
)

const usageString = `FAT32 SD card image builder.

Usage: %s [flags] <file>...

`

const (
	sectorSize     = 512
	partitionStart = 2048 // sectors, 1 MiB aligned
)

var (
	flags = flag.NewFlagSet("sdimage", flag.ExitOnError)

	output = flags.String("o", "sdcard.img", "image `file` to create")
	sizeMB = flags.Int64("size", 64, "image size in MiB")
	label  = flags.String("label", "LUCKYRTC", "volume label")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "sdimage")
	flags.PrintDefaults()
}

// File is copied to the root directory of the image.
type File struct {
	Name string
	Data []byte
}

// Create writes a disk image of size bytes to dst with a single FAT32
// partition holding files.
func Create(dst string, size int64, label string, files []File) error {
	d, err := diskfs.Create(dst, size, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		return err
	}
	defer d.File.Close()

	table := &mbr.Table{
		LogicalSectorSize:  sectorSize,
		PhysicalSectorSize: sectorSize,
		Partitions: []*mbr.Partition{{
			Type:  mbr.Fat32LBA,
			Start: partitionStart,
			Size:  uint32(size/sectorSize - partitionStart),
		}},
	}
	if err := d.Partition(table); err != nil {
		return fmt.Errorf("partition: %w", err)
	}

	fs, err := d.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: label,
	})
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	for _, file := range files {
		f, err := fs.OpenFile(path.Join("/", file.Name), os.O_CREATE|os.O_RDWR)
		if err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}
		if _, err := f.Write(file.Data); err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}
	}
	return nil
}

// ReadFile returns the contents of name in the root directory of the image
// at src.
func ReadFile(src, name string) ([]byte, error) {
	d, err := diskfs.Open(src)
	if err != nil {
		return nil, err
	}
	defer d.File.Close()
	fs, err := d.GetFilesystem(1)
	if err != nil {
		return nil, err
	}
	f, err := fs.OpenFile(path.Join("/", name), os.O_RDONLY)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(f)
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])
	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(1)
	}

	var files []File
	for _, name := range flags.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			log.Fatalln(err)
		}
		files = append(files, File{Name: filepath.Base(name), Data: data})
	}
	if err := Create(*output, *sizeMB<<20, *label, files); err != nil {
		log.Fatalln(err)
	}
}
