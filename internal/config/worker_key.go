package config

type WorkerKeyStruct struct {
	RecordChecksQueue string
}

var WorkerKey = &WorkerKeyStruct{
	RecordChecksQueue: "record_checks_queue",
}
