package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/halvorsen/seedforge/visual"
)

// writePPM writes one P6 raw binary frame (no alpha) to w.
func writePPM(w io.Writer, fb *visual.Framebuffer) error {
	header := fmt.Sprintf("P6\n%d %d\n255\n", visual.Width, visual.Height)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	buf := make([]byte, visual.Width*visual.Height*3)
	for i, p := range fb.Pixels {
		_, r, g, b := visual.UnpackARGB(p)
		buf[i*3] = r
		buf[i*3+1] = g
		buf[i*3+2] = b
	}
	_, err := w.Write(buf)
	return err
}

// PipeWriter streams concatenated P6 frames to a single writer (stdout in
// `--pipe-ppm` mode); all diagnostics must go elsewhere (stderr) since this
// writer's stream is the program's binary output.
type PipeWriter struct {
	w *bufio.Writer
}

func NewPipeWriter(w io.Writer) *PipeWriter {
	return &PipeWriter{w: bufio.NewWriter(w)}
}

func (p *PipeWriter) WriteFrame(index int, fb *visual.Framebuffer) error {
	return writePPM(p.w, fb)
}

// Flush must be called once after the last WriteFrame to drain the
// internal buffer.
func (p *PipeWriter) Flush() error {
	return p.w.Flush()
}

// FileWriter writes one frame_%06d.ppm file per frame into a directory.
type FileWriter struct {
	dir string
}

func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

func (f *FileWriter) WriteFrame(index int, fb *visual.Framebuffer) error {
	path := fmt.Sprintf("%s/frame_%06d.ppm", f.dir, index)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	buf := bufio.NewWriter(file)
	if err := writePPM(buf, fb); err != nil {
		return err
	}
	return buf.Flush()
}
