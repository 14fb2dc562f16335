package misc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteFile creates or truncates fileName and streams the output of write
// into it through a buffered writer. The file is closed on every path, and a
// failed close is reported like a failed write.
func WriteFile(fileName string, write func(w io.Writer) error) (err error) {
	if fileName == "" {
		return IOError("write file", errors.New("no filename supplied"))
	}
	// create/truncate file for writing
	file, err := os.Create(fileName)
	if err != nil {
		return IOError("write file", fmt.Errorf("unable to create file %s - %w", fileName, err))
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = IOError("write file", fmt.Errorf("unable to close file %s - %w", fileName, cerr))
		}
	}()

	bw := bufio.NewWriter(file)
	if err = write(bw); err != nil {
		return IOError("write file", fmt.Errorf("unable to write file %s - %w", fileName, err))
	}
	if err = bw.Flush(); err != nil {
		return IOError("write file", fmt.Errorf("unable to write file %s - %w", fileName, err))
	}
	return nil
}
