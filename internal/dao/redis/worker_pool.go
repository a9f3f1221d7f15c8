package redis

import (
	"go.uber.org/zap"
)

// cacheTask is a queued cache operation (closure form).
type cacheTask struct {
	Action func()
}

// cacheTaskChan buffers queued cache tasks.
var cacheTaskChan chan *cacheTask

// SubmitCacheTask queues an async cache operation.
// When the queue is full the task degrades to synchronous execution so
// invalidations are never dropped.
//
//	redis.SubmitCacheTask(func() {
//	    _ = redis.DelKeysWithPattern("friend_list_" + userId)
//	})
func SubmitCacheTask(action func()) {
	select {
	case cacheTaskChan <- &cacheTask{Action: action}:
	default:
		zap.L().Warn("redis cache task channel full, executing synchronously")
		action()
	}
}

// startWorker runs one consumer loop, restarting itself on panic.
func startWorker() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("redis worker panic", zap.Any("recover", r))
			go startWorker()
		}
	}()

	for task := range cacheTaskChan {
		if task.Action != nil {
			task.Action()
		}
	}
}

// InitCacheWorker starts the cache worker pool.
func InitCacheWorker(workerNum int, bufferSize int) {
	cacheTaskChan = make(chan *cacheTask, bufferSize)

	for i := 0; i < workerNum; i++ {
		go startWorker()
	}
	zap.L().Info("redis cache workers started", zap.Int("workers", workerNum), zap.Int("buffer", bufferSize))
}
