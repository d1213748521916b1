// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package fuzzdec

var globalDriver *Driver

func GetGlobalDriver() *Driver {
	if globalDriver == nil {
		globalDriver = NewDriver()
	}
	return globalDriver
}

func SetGlobalConfig(cfg *Config) {
	globalDriver = NewDriver(cfg.Options()...)
}
