// Package jobs provides scheduled background tasks for the lunch ordering
// service, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. PickListExportJob - on weekdays after the order cutoff, writes the pick
//     list workbook of the delivery date that just closed to a directory
//  2. CatalogRefreshJob - periodically reloads the product catalog cache
//
// # Usage
//
//	jobManager := jobs.NewJobManager(pickListJob, catalogJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The pick list spec uses six fields (seconds first) and is evaluated in the
// school time zone. The default "0 5 15 * * 1-5" runs five minutes after the
// 15:00 cutoff.
package jobs
