package worker

import (
	"ulfdata.com/udl/tasks"
	"fmt"
)

type redisTransactions interface {
	getChunkTask(redisKey string) (*tasks.ChunkTask, error)
	getJobTask(task *Task) (*tasks.JobTask, error)
	getDocTask(task *Task) (*tasks.DocumentTaskCached, error)
	onTaskStarted(task *Task) error
	onTaskCancelled(task *Task, errorMessages ...string) error
	onTaskExceededRetries(task *Task, maxRetries int) error
	onTaskFailedWithError(task *Task, err error) error
	onTaskComplete(task *Task) error
	close()
}

type redisClientWrapper struct {
	tasksClient *tasks.Client
}

func (wrapper *redisClientWrapper) close() {
	wrapper.tasksClient.Close()
}

func (wrapper *redisClientWrapper) onTaskStarted(task *Task) error {
	err := wrapper.tasksClient.Chunks.Update(task.redisKey, func(task *tasks.ChunkTask) {
		task.TaskStatuses.UDL.Status = tasks.TaskStatusStarted
		task.TaskStatuses.UDL.Attempts += 1
		task.TaskStatuses.UDL.StartedAt = getFormattedNow()
		task.TaskStatuses.UDL.CompletedAt = nil
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskCancelled(task *Task, errorMessages ...string) error {
	err := wrapper.tasksClient.Chunks.Update(task.redisKey, func(chunkTask *tasks.ChunkTask) {
		chunkTask.TaskStatuses.UDL.Status = tasks.TaskStatusCanceled
		chunkTask.TaskStatuses.UDL.StartedAt = getFormattedNow()
		chunkTask.TaskStatuses.UDL.CompletedAt = getFormattedNow()
		chunkTask.TaskStatuses.UDL.Attempts += 1
		chunkTask.TaskStatuses.UDL.ErrorMessages = append(
			chunkTask.TaskStatuses.UDL.ErrorMessages,
			errorMessages...,
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(task *Task, maxRetries int) error {
	err := wrapper.tasksClient.Documents.Update(task.chunkTask.DocID, func(docTask *tasks.DocumentTask) {
		docTask.FailedTasks = append(docTask.FailedTasks, "udl")
		docTask.FailedChunks[task.redisKey] = append(docTask.FailedChunks[task.redisKey], "udl")
	})
	if err != nil {
		return err
	}
	err = wrapper.tasksClient.Chunks.Update(task.redisKey, func(chunkTask *tasks.ChunkTask) {
		chunkTask.TaskStatuses.UDL.Status = tasks.TaskStatusCompletedFailure
		chunkTask.TaskStatuses.UDL.StartedAt = getFormattedNow()
		chunkTask.TaskStatuses.UDL.CompletedAt = getFormattedNow()
		chunkTask.TaskStatuses.UDL.Attempts += 1
		chunkTask.TaskStatuses.UDL.ErrorMessages = append(
			chunkTask.TaskStatuses.UDL.ErrorMessages,
			fmt.Sprintf(
				"Task has exceeded retries. (Attempts: %d, max retries: %d )",
				chunkTask.TaskStatuses.UDL.Attempts,
				maxRetries,
			),
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(task *Task, err error) error {
	return wrapper.tasksClient.Chunks.Update(task.redisKey, func(chunkTask *tasks.ChunkTask) {
		chunkTask.TaskStatuses.UDL.Status = tasks.TaskStatusFailed
		chunkTask.TaskStatuses.UDL.CompletedAt = getFormattedNow()
		chunkTask.TaskStatuses.UDL.ErrorMessages = append(chunkTask.TaskStatuses.UDL.ErrorMessages, err.Error())
	})
}

func (wrapper *redisClientWrapper) onTaskComplete(task *Task) error {
	return wrapper.tasksClient.Chunks.Update(task.redisKey, func(chunkTask *tasks.ChunkTask) {
		if !chunkTask.TaskStatuses.UDL.Status.Complete() {
			chunkTask.TaskStatuses.UDL.Status = tasks.TaskStatusCompletedSuccess
		}
		chunkTask.TaskStatuses.UDL.CompletedAt = getFormattedNow()
		chunkTask.TaskStatuses.UDL.ResultsFileKey = getResultsFileKey(task)
	})
}

func (wrapper *redisClientWrapper) getChunkTask(redisKey string) (*tasks.ChunkTask, error) {
	return wrapper.tasksClient.Chunks.Get(redisKey)
}

func (wrapper *redisClientWrapper) getJobTask(task *Task) (*tasks.JobTask, error) {
	return wrapper.tasksClient.Jobs.GetCached(task.chunkTask.JobID)
}

func (wrapper *redisClientWrapper) getDocTask(task *Task) (*tasks.DocumentTaskCached, error) {
	return wrapper.tasksClient.Documents.GetCached(task.chunkTask.DocID)
}
