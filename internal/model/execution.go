package model

type TaskExecutionCreate struct {
	ExecutionDate string `json:"execution_date,omitempty"`
}

type TaskExecutionUpdate struct {
	UserID        int    `json:"user_id,omitempty"`
	ExecutionDate string `json:"execution_date,omitempty"`
}

type TaskExecution struct {
	ID            int    `json:"id"`
	TaskID        int    `json:"task_id"`
	Category      string `json:"category"`
	TaskName      string `json:"task_name"`
	UserID        int    `json:"user_id"`
	UserName      string `json:"user_name"`
	ExecutionDate string `json:"execution_date"`
	CreatedAt     string `json:"created_at"`
}
