package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

const defaultForcedTimeout = 2 * time.Second

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

type resource struct {
	name  string
	close Func
}

func (r resource) label() string {
	if r.name == "" {
		return "unnamed"
	}
	return r.name
}

// Closer закрывает зарегистрированные ресурсы в обратном порядке (LIFO) ровно один раз.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	resources     []resource
	forcedTimeout time.Duration
}

// NewCloser создает Closer. forcedTimeout ограничивает принудительное закрытие ресурсов,
// до которых не дошла очередь из-за отмены контекста в Close.
func NewCloser(forcedTimeout time.Duration) *Closer {
	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует функцию закрытия без имени.
func (c *Closer) Add(f Func) {
	c.AddNamed("", f)
}

// AddNamed регистрирует функцию закрытия; имя попадает в ошибки и в отчет о прерывании.
func (c *Closer) AddNamed(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource{name: name, close: f})
}

// AddFunc регистрирует закрытие без контекста и без ошибки (пулы, клиенты).
func (c *Closer) AddFunc(name string, f func()) {
	c.AddNamed(name, func(context.Context) error {
		f()
		return nil
	})
}

// Close закрывает ресурсы по одному. Если ctx истекает раньше, текущий и оставшиеся
// ресурсы закрываются параллельно с отдельным таймаутом forcedTimeout.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		resources := c.resources
		c.mu.Unlock()

		closed, errs := c.closeInOrder(ctx, resources)
		if closed == len(resources) {
			if len(errs) > 0 {
				err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errs, "\n"))
			}
			return
		}

		pending := resources[:len(resources)-closed]
		errs = append(errs, c.forceClose(pending)...)

		err = fmt.Errorf(
			"shutdown interrupted at %s after %d/%d funcs:\n%s",
			pending[len(pending)-1].label(),
			closed,
			len(resources),
			strings.Join(errs, "\n"),
		)
	})

	return err
}

// closeInOrder возвращает число закрытых ресурсов (с конца списка) и их ошибки.
func (c *Closer) closeInOrder(ctx context.Context, resources []resource) (int, []string) {
	var errs []string
	for i := len(resources) - 1; i >= 0; i-- {
		r := resources[i]
		done := make(chan error, 1)
		go func() { done <- r.close(ctx) }()

		select {
		case err := <-done:
			if err != nil {
				errs = append(errs, fmt.Sprintf("[!] %s: %v", r.label(), err))
			}
		case <-ctx.Done():
			return len(resources) - 1 - i, errs
		}
	}

	return len(resources), errs
}

func (c *Closer) forceClose(resources []resource) []string {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []string
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, r := range resources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.close(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Sprintf("[FORCED] %s: %v", r.label(), err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
