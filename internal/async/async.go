package async

import (
	"sync"

	"github.com/sirupsen/logrus"
)

func pcall(fn func()) {
	defer func() {
		if err := recover(); err != nil {
			logrus.Errorf("async/pcall: Error=%v", err)
		}
	}()

	fn()
}

func Run(fn func()) {
	go pcall(fn)
}

// RunN calls fn(0) .. fn(n-1) concurrently, at most limit at a time, and
// waits for all of them. A panicking call is logged and does not stop the
// others. limit <= 0 means no limit.
func RunN(n, limit int, fn func(i int)) {
	if limit <= 0 || limit > n {
		limit = n
	}

	var (
		wg  sync.WaitGroup
		sem = make(chan struct{}, limit)
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		sem <- struct{}{}
		Run(func() {
			defer func() { <-sem; wg.Done() }()
			fn(i)
		})
	}
	wg.Wait()
}
