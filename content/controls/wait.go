package controls

import (
	"context"
	"time"
)

// WaitUntil 每隔 interval 读取一次按键，直到 cond 成立或 ctx 结束
func WaitUntil(ctx context.Context, src Source, interval time.Duration, cond func(Buttons) bool) error {
	if cond(src.Pressed()) {
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if cond(src.Pressed()) {
				return nil
			}
		}
	}
}

func Held(mask Buttons) func(Buttons) bool {
	return func(b Buttons) bool { return b.Has(mask) }
}

func Released(mask Buttons) func(Buttons) bool {
	return func(b Buttons) bool { return !b.Has(mask) }
}
