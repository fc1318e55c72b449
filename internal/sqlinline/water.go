package sqlinline

const QInsertWaterIntake = `--sql 3538e2d3-c667-4def-8a75-7ac5b6010f23
insert into water_intake(id, user_id, amount_ml, time, created_at)
values (
  gen_random_uuid(),
  $1::uuid,
  $2::int,
  coalesce($3::timestamptz, now()),
  now()
)
returning id, time;
`

const QListWaterIntakeSince = `--sql 8243becd-40f4-4a94-8e4b-68649a182d28
select id, user_id, amount_ml, time
from water_intake
where user_id = $1::uuid
  and time >= $2::timestamptz
order by time desc;
`
