/*
Package config provides YAML configuration loading for the Burrow node.

The config covers the node-local concerns the placement worker and its CLI
entry need: where the storage engine lives, the advertised capacity cap,
heartbeat cadences, the observability listen address, and logging. Fields
left unset in the file keep their defaults; Validate rejects unusable
values before the node starts.

# Usage

	cfg, err := config.Load("/etc/burrow/burrow.yaml")
	if err != nil {
		return err
	}

Example config file:

	data_dir: /var/lib/burrow
	capacity: 107374182400        # 100 GiB cap; 0 = bounded by disk
	region_heartbeat_interval: 10s
	store_heartbeat_interval: 10s
	metrics_addr: ":9090"
	log_level: info
	log_json: true
*/
package config
