package flags

const (
	Endpoint = "endpoint"

	Log_Level = "log.level"

	Retries = "retries"

	Health_Liveness  = "liveness"
	Health_Endpoints = "endpoints"

	Validators_Subnet = "subnet"
)
