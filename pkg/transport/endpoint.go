package transport

import "fmt"

// Endpoint addresses a single Interface5 WebServiceInput instance. Scenario
// and Tenant are the vendor routing identifiers embedded in the URL path.
type Endpoint struct {
	Hostname string
	Port     int
	Scenario string
	Tenant   string
}

// NewEndpoint creates an Endpoint for the given Interface5 instance.
func NewEndpoint(hostname string, port int, scenario, tenant string) Endpoint {
	return Endpoint{
		Hostname: hostname,
		Port:     port,
		Scenario: scenario,
		Tenant:   tenant,
	}
}

// URL returns the fully qualified batch ingestion URL:
//
//	https://{hostname}:{port}/api/v1/Input/{tenant}/{scenario}/Batches
func (e Endpoint) URL() string {
	return fmt.Sprintf("https://%s:%d/api/v1/Input/%s/%s/Batches",
		e.Hostname, e.Port, e.Tenant, e.Scenario)
}
