package dictionary

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
)

// LoadWordFile maps a vocabulary file read-only and feeds every word to add.
// Lines hold a word optionally followed by a frequency column, which is
// ignored. Blank lines and lines starting with '#' are skipped.
func LoadWordFile(path string, add func(string)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if st.Size() == 0 {
		return 0, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer m.Unmap()

	return eachWord(m, add), nil
}

func eachWord(data []byte, add func(string)) int {
	n := 0
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		add(strings.Fields(line)[0])
		n++
	}
	return n
}
