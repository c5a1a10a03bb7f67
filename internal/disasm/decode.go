package disasm

import (
	"context"
	"fmt"

	"github.com/retroenv/lc3disasm/internal/arch/lc3"
	"github.com/retroenv/lc3disasm/internal/config"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// chunkSize is the number of words decoded by a single task.
const chunkSize = 4096

// decode decodes all words of the image. The image is split into chunks that
// are decoded by a bounded number of workers, each worker only writes the
// slice positions of its own chunk.
func (dis *Disasm) decode(ctx context.Context) error {
	dis.words = dis.image.Words()
	dis.instructions = make([]lc3.Instruction, len(dis.words))

	workers := config.DecodeWorkers(dis.options.Workers)

	dis.logger.Debug("Decoding words",
		log.Int("words", len(dis.words)),
		log.Int("workers", workers))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for start := 0; start < len(dis.words) && groupCtx.Err() == nil; start += chunkSize {
		end := min(start+chunkSize, len(dis.words))
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				dis.instructions[i] = dis.decoder.Decode(dis.words[i])
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("decoding words: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("decoding words: %w", err)
	}
	return nil
}
