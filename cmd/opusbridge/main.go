package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/opus-bridge/bridge"
)

var supportedRates = map[int]bool{8000: true, 12000: true, 16000: true, 24000: true, 48000: true}

func main() {
	var (
		version     = flag.Bool("version", false, "Print codec version and exit")
		sizes       = flag.Bool("sizes", false, "Print native encoder/decoder sizes and exit")
		inFile      = flag.String("in", "", "Input WAV file")
		outFile     = flag.String("out", "", "Output WAV file for the decoded round-trip (optional)")
		bitrate     = flag.Int("bitrate", 16000, "Encoder bitrate in bits/sec")
		complexity  = flag.Int("complexity", 5, "Encoder complexity (0-10)")
		frameMs     = flag.Int("frame", 20, "Frame duration in ms (2.5, 5, 10, 20, 40, 60 are valid Opus frames)")
		verbose     = flag.Bool("v", false, "Log bridge diagnostics to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *version {
		fmt.Println(bridge.New(bridge.DefaultCodec()).Version())
		return
	}

	if *sizes {
		b := bridge.New(bridge.DefaultCodec())
		defer b.Close()
		for _, ch := range []int{1, 2} {
			fmt.Printf("channels=%d encoder=%d bytes decoder=%d bytes\n",
				ch, b.EncoderSize(ch), b.DecoderSize(ch))
		}
		return
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: opusbridge -in <file.wav> [-out <file.wav>] [-bitrate n] [-complexity 0-10] [-frame ms]")
		fmt.Fprintln(os.Stderr, "       opusbridge -in <file.wav> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       opusbridge -version | -sizes")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*inFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, *bitrate, *complexity, *frameMs, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// pcmFile is a decoded WAV input.
type pcmFile struct {
	samples    []int16
	sampleRate int
	channels   int
}

func readWAV(path string) (*pcmFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if buf.Format == nil {
		return nil, fmt.Errorf("decode wav: missing format")
	}

	rate := buf.Format.SampleRate
	if !supportedRates[rate] {
		return nil, fmt.Errorf("sample rate %d not supported by the codec (use 8000, 12000, 16000, 24000 or 48000)", rate)
	}
	channels := buf.Format.NumChannels
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%d channels not supported (mono or stereo only)", channels)
	}

	shift := uint(0)
	if dec.BitDepth > 16 {
		shift = uint(dec.BitDepth - 16)
	}
	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s >> shift)
	}

	return &pcmFile{samples: samples, sampleRate: rate, channels: channels}, nil
}

func writeWAV(path string, pcm []int16, sampleRate, channels int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	data := make([]int, len(pcm))
	for i, s := range pcm {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	return enc.Close()
}

// roundTripStats summarizes one encode+decode pass over a file.
type roundTripStats struct {
	frames      int
	pcmBytes    int
	packetBytes int
	minPacket   int
	maxPacket   int
	decoded     []int16
}

func (s *roundTripStats) ratio() float64 {
	if s.packetBytes == 0 {
		return 0
	}
	return float64(s.pcmBytes) / float64(s.packetBytes)
}

// roundTrip pushes the file through an encoder and decoder pair frame
// by frame, collecting packet statistics.
func roundTrip(b *bridge.Bridge, in *pcmFile, bitrate, complexity, frameMs int) (*roundTripStats, error) {
	frameSize := in.sampleRate * frameMs / 1000

	eh := b.CreateEncoder(in.sampleRate, in.channels, complexity, bitrate)
	if eh == 0 {
		return nil, fmt.Errorf("encoder creation failed (rate=%d channels=%d)", in.sampleRate, in.channels)
	}
	defer b.DestroyEncoder(eh)

	dh := b.CreateDecoder(in.sampleRate, in.channels)
	if dh == 0 {
		return nil, fmt.Errorf("decoder creation failed (rate=%d channels=%d)", in.sampleRate, in.channels)
	}
	defer b.DestroyDecoder(dh)

	stats := &roundTripStats{minPacket: int(^uint(0) >> 1)}
	packet := make([]byte, 4000)
	frame := make([]int16, frameSize*in.channels)
	out := make([]int16, frameSize*in.channels)

	samples := in.samples
	for len(samples) >= frameSize*in.channels {
		copy(frame, samples[:frameSize*in.channels])
		samples = samples[frameSize*in.channels:]

		n := b.Encode(eh, frame, frameSize, packet)
		if n < 0 {
			return nil, fmt.Errorf("encode failed at frame %d: status %d", stats.frames, n)
		}

		written := b.Decode(dh, packet, int(n), out, frameSize)
		if written < 0 {
			return nil, fmt.Errorf("decode failed at frame %d: status %d", stats.frames, written)
		}

		stats.frames++
		stats.pcmBytes += len(frame) * 2
		stats.packetBytes += int(n)
		stats.minPacket = min(stats.minPacket, int(n))
		stats.maxPacket = max(stats.maxPacket, int(n))
		stats.decoded = append(stats.decoded, out[:int(written)*in.channels]...)
	}

	if stats.frames == 0 {
		return nil, fmt.Errorf("input shorter than one %dms frame", frameMs)
	}
	return stats, nil
}

func run(inFile, outFile string, bitrate, complexity, frameMs int, verbose bool) error {
	in, err := readWAV(inFile)
	if err != nil {
		return err
	}

	opts := []bridge.Option{}
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()
		opts = append(opts, bridge.WithLogger(log))
	}

	b := bridge.New(bridge.DefaultCodec(), opts...)
	defer b.Close()

	stats, err := roundTrip(b, in, bitrate, complexity, frameMs)
	if err != nil {
		return err
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	printStats(inFile, b.Version(), in, stats, bitrate, frameMs, styled)

	if outFile != "" {
		if err := writeWAV(outFile, stats.decoded, in.sampleRate, in.channels); err != nil {
			return err
		}
		fmt.Printf("\nDecoded round-trip written to %s\n", outFile)
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

func printStats(file, codecVersion string, in *pcmFile, stats *roundTripStats, bitrate, frameMs int, styled bool) {
	header := "Opus Bridge"
	label := func(s string) string { return s }
	if styled {
		header = headerStyle.Render(header)
		label = func(s string) string { return labelStyle.Render(s) }
	}

	seconds := float64(len(in.samples)) / float64(in.sampleRate*in.channels)
	fmt.Printf("%s %s\n\n", header, file)
	fmt.Printf("%s %s\n", label("codec:      "), codecVersion)
	fmt.Printf("%s %d Hz, %d channel(s), %.2fs\n", label("input:      "), in.sampleRate, in.channels, seconds)
	fmt.Printf("%s %d bit/s requested, %dms frames\n", label("encoder:    "), bitrate, frameMs)
	fmt.Printf("%s %d\n", label("frames:     "), stats.frames)
	fmt.Printf("%s %d -> %d bytes (%.1fx)\n", label("compressed: "), stats.pcmBytes, stats.packetBytes, stats.ratio())
	fmt.Printf("%s min %d / avg %d / max %d bytes\n", label("packets:    "),
		stats.minPacket, stats.packetBytes/stats.frames, stats.maxPacket)
	fmt.Printf("%s %.0f bit/s effective\n", label("bitrate:    "), float64(stats.packetBytes*8)/seconds)
}
